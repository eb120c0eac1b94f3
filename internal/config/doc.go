// Package config provides configuration management for the mlvm CLI.
//
// Settings are read by Viper from, in order of precedence, MLVM_* environment
// variables, ./config.yaml, and ~/.config/mlvm/config.yaml:
//
//	version: 1
//	home: ~/.mlvm            # MLVM_HOME
//	github_token: ghp_...    # MLVM_GITHUB_TOKEN, sent to api.github.com only
//	download:
//	  timeout: 10m
//	  max_bytes: 1073741824
//	  user_agent: mlvm/1.2.0
//	install:
//	  rename_attempts: 3
//	  rename_backoff: 500ms
//
// Call [Init] once, then [Load]. Load validates the result and returns
// an error matching errors.ErrInvalidConfig when a field is out of range.
package config
