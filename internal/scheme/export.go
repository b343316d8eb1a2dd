package scheme

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// XresourcesHeaders labels each normal/bright slot pair in the Xresources dump.
var XresourcesHeaders = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// WriteXresources writes the scheme as X resources.
func (s *Scheme) WriteXresources(w io.Writer) error {
	fg, bg := s.Foreground().String(), s.Background().String()

	ew := &errWriter{w: w}
	ew.printf("! special\n")
	ew.printf("*.foreground:\t%s\n", fg)
	ew.printf("*.background:\t%s\n", bg)
	ew.printf("*.cursorColor:\t%s\n", fg)

	for i, header := range XresourcesHeaders {
		ew.printf("\n! %s\n", header)
		ew.printf("*.color%d:\t%s\n", i, s.colors[i].String())
		ew.printf("*.color%d:\t%s\n", i+8, s.colors[i+8].String())
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Snapshot is a serialisable view of a generated scheme.
type Snapshot struct {
	Theme  string            `json:"theme" yaml:"theme"`
	Roles  map[string]string `json:"roles" yaml:"roles"`
	Colors []string          `json:"colors" yaml:"colors"`
}

// Snapshot captures the roles and slots as hex strings.
func (s *Scheme) Snapshot() Snapshot {
	theme := "dark"
	if s.lightTheme {
		theme = "light"
	}

	snap := Snapshot{
		Theme:  theme,
		Roles:  make(map[string]string, len(Roles())),
		Colors: make([]string, Size),
	}
	for _, role := range Roles() {
		snap.Roles[string(role)] = s.roles[role].Hex()
	}
	for i, c := range s.colors {
		snap.Colors[i] = c.Hex()
	}
	return snap
}

// ToJSON returns the indented JSON form of the snapshot.
func (snap Snapshot) ToJSON() ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// ToYAML returns the YAML form of the snapshot.
func (snap Snapshot) ToYAML() ([]byte, error) {
	return yaml.Marshal(snap)
}
