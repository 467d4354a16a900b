package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md motd.json boss.json
var embeddedFS embed.FS

// FS returns the embedded filesystem with the about page, tips and boss screen lines.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadMOTD returns the contents of motd.json.
func ReadMOTD() ([]byte, error) {
	return embeddedFS.ReadFile("motd.json")
}

// ReadBoss returns the contents of boss.json.
func ReadBoss() ([]byte, error) {
	return embeddedFS.ReadFile("boss.json")
}
