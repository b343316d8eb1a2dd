// Package scheme builds a 16-colour terminal scheme from an image's dominant colours
// and resolves colour expressions such as "ACCENT.lighten(10).rgba" against it.
package scheme

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/wallhue/internal/colour"
)

// Size is the number of indexed slots in a scheme.
const Size = 16

// Source supplies the image data a scheme is generated from.
type Source interface {
	// IsLight reports whether the scheme should be light (dark text on a light background).
	IsLight() bool
	// DominantColors returns the weighted candidate colours in no particular order.
	DominantColors() []colour.Color
}

// Role names one of the seven semantic colours.
type Role string

const (
	RoleBackground Role = "BACKGROUND"
	RoleForeground Role = "FOREGROUND"
	RoleAccent     Role = "ACCENT"
	RoleGood       Role = "GOOD"
	RoleWarning    Role = "WARNING"
	RoleError      Role = "ERROR"
	RoleInfo       Role = "INFO"
)

// Roles returns all roles in display order.
func Roles() []Role {
	return []Role{RoleBackground, RoleForeground, RoleAccent, RoleGood, RoleWarning, RoleError, RoleInfo}
}

// Scheme is a generated palette: seven roles plus sixteen indexed slots.
//
// A Scheme is built once by Generate and is read-only afterwards. It carries no
// locking; do not share it until Generate has returned.
type Scheme struct {
	lightTheme bool
	dominant   []colour.Color

	// used records every committed colour in order. It only feeds diversity scoring.
	used []colour.Color

	roles  map[Role]colour.Color
	colors [Size]colour.Color

	logger hclog.Logger
}

// New creates an empty scheme: sixteen zero colours and no roles.
func New() *Scheme {
	return &Scheme{
		roles:  make(map[Role]colour.Color, len(Roles())),
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used to trace generation.
func (s *Scheme) WithLogger(logger hclog.Logger) *Scheme {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s.logger = logger
	return s
}

// IsLight reports whether the scheme was generated as a light theme.
func (s *Scheme) IsLight() bool { return s.lightTheme }

// Role returns the colour assigned to role; unset roles are the zero colour.
func (s *Scheme) Role(role Role) colour.Color { return s.roles[role] }

// Background returns the background role.
func (s *Scheme) Background() colour.Color { return s.roles[RoleBackground] }

// Foreground returns the foreground (text) role.
func (s *Scheme) Foreground() colour.Color { return s.roles[RoleForeground] }

// Color returns slot i. It panics if i is outside [0, Size).
func (s *Scheme) Color(i int) colour.Color { return s.colors[i] }

// Colors returns a copy of all sixteen slots.
func (s *Scheme) Colors() [Size]colour.Color { return s.colors }

// UsedColors returns a copy of the commitment history.
func (s *Scheme) UsedColors() []colour.Color {
	return append([]colour.Color(nil), s.used...)
}
