package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# Sentimeter configuration
version: "1.0"

scoring:
  # Optional YAML map of extra "word: valence" entries merged over the
  # built-in lexicon. Valences are integers, typically -5..5.
  lexicon_file: ""
  # Attach a VADER compound score (-1..1) to every result.
  vader: false

samples:
  # Empty uses the built-in sample messages. A .yaml file holds a list of
  # strings; any other file is read as a feed in the format below.
  file: ""
  # lines | auto | json | logfmt | text
  format: lines
  # Simulated fetch latency before samples appear.
  delay: 1s

output:
  # text | json | markdown | csv
  default_format: text
  # auto | always | never
  color_mode: auto
  verbose: false
  no_emoji: false

ui:
  # default | high-contrast | minimal
  theme: default
  placeholder: "Enter text to analyze..."
  input_height: 4

watch:
  # Feed format of watched files.
  format: lines
  # Address for the Prometheus /metrics endpoint, e.g. ":9090".
  # Empty disables it.
  metrics_addr: ""
`
}

// MinimalSampleConfig returns a short configuration file with the common options
func MinimalSampleConfig() string {
	return `version: "1.0"
scoring:
  vader: false
samples:
  delay: 1s
output:
  default_format: text
ui:
  theme: default
`
}
