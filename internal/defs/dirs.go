// Package defs holds path, file name and permission constants shared by
// the planner, the writer and the CLI.
package defs

// Root directories of a generated project.
const (
	LibDir    = "lib"
	TestDir   = "test"
	AssetsDir = "assets"
)

// BaseDirs lists the directories every generated project receives,
// independent of the chosen architecture.
var BaseDirs = []string{
	LibDir,
	TestDir,
	AssetsDir,
	AssetsDir + "/images",
	AssetsDir + "/icons",
	AssetsDir + "/fonts",
}

// Permissions for materialized paths.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
