package config

// Template is the commented starting point written by `rescript init`.
const Template = `# rescript configuration
# Values here are overridden by RESCRIPT_* environment variables and CLI flags.

# Built-in script range to look for after substitution.
# Run 'rescript scripts' for the list.
script: han-basic

# Custom code point ranges; when set, replaces script.
# ranges: "4E00-9FA5,U+3007"

# Mapping files, applied in order as a single table.
# Relative paths are resolved against this file's directory.
mappings: []
#  - mappings/comments.yml

# Keep a PATH.rescript.bak copy of each file before rewriting it.
backup: false

# Exit non-zero when residual text remains.
strict: false

# Output format: text, json, table or diff.
format: text

# Parallel workers; 0 means one per CPU.
jobs: 0
`
