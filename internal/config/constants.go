package config

import "time"

// Base application details
const AppName = "kite"
const ConfigDirName = "kite"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "kite.log"

const Version = "0.1.0"

// UI layout
const StatusBarHeight = 1

// Status bar
const MessageTimeout = 4 * time.Second

// Editing defaults
const DefaultTabWidth = 4
const DefaultMaxHistory = 1000
const SystemClipboard = false
