package main

// Message constants for command help text
const (
	MsgRootShort = "Create folder structures from declarative specs"
	MsgRootLong  = `treegen materializes a directory tree described in a folder-spec document
(JSON, YAML, TOML or XML) onto a filesystem root, substituting $name
placeholders with values from a variables file and creating empty files or
copying seed files into place.`

	MsgCreateShort = "Materialize a folder spec under a creation root"
	MsgCreateLong  = `Create reads the folder-spec document, substitutes placeholders with the
values from the optional variables file, then creates every directory and
file under the creation root.

File entries that name an existing file, absolutely or relative to the
spec document's directory, are copied; anything else becomes an empty
file. Existing destination files are overwritten.`
	MsgCreateExample = `  # Create the tree described by project.json under ./out
  treegen create ./out project.json

  # Substitute $show and $episode from vars.json
  treegen create /mnt/projects project.json vars.json

  # Preview without touching the filesystem
  treegen create ./out project.json --dry-run`

	MsgPlanShort = "Show the resolved tree without creating anything"
	MsgPlanLong  = `Plan flattens the folder spec, applies placeholder substitution and prints
the resulting directory and file layout. Nothing is written to disk, but
substitution errors surface exactly as they would during create.`

	MsgDocsShort = "Show documentation topics"
	MsgDocsLong  = `Docs renders treegen's built-in documentation. Run without arguments to
list the available topics.`
)
