// Package config manages user-level settings stored at ~/.springpress/config.yaml.
// Every key can also be set through a SPRINGPRESS_-prefixed environment
// variable, e.g. SPRINGPRESS_MANIFEST_VERSION for manifest.version.
package config
