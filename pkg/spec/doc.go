// Package spec loads folder-spec and substitution-variable documents and
// validates them into the typed tree the pipeline consumes.
//
// Folder specs are nested mappings: a key whose value is a mapping is a
// subfolder, a key whose value is a sequence of strings is a folder holding
// those files. A mapping may additionally carry the reserved key "files"
// whose sequence value lists the files of the folder itself, which is how a
// folder declares both files and subfolders. The on-disk format is chosen
// by file extension: JSON, YAML, TOML, or XML.
package spec
