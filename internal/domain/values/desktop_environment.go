package values

import "strings"

// DesktopEnvironment is a registered desktop environment, as used by the
// OnlyShowIn and NotShowIn keys.
type DesktopEnvironment int

// Registered desktop environments.
const (
	DesktopUnknown DesktopEnvironment = iota
	DesktopGNOME
	DesktopGNOMEClassic
	DesktopGNOMEFlashback
	DesktopKDE
	DesktopLXDE
	DesktopLXQt
	DesktopMATE
	DesktopRazor
	DesktopROX
	DesktopTDE
	DesktopUnity
	DesktopXFCE
	DesktopEDE
	DesktopCinnamon
	DesktopPantheon
	DesktopBudgie
	DesktopEnlightenment
	DesktopDDE
	DesktopEndless
	DesktopOld
)

var desktopNames = map[DesktopEnvironment]string{
	DesktopGNOME:          "GNOME",
	DesktopGNOMEClassic:   "GNOME-Classic",
	DesktopGNOMEFlashback: "GNOME-Flashback",
	DesktopKDE:            "KDE",
	DesktopLXDE:           "LXDE",
	DesktopLXQt:           "LXQt",
	DesktopMATE:           "MATE",
	DesktopRazor:          "Razor",
	DesktopROX:            "ROX",
	DesktopTDE:            "TDE",
	DesktopUnity:          "Unity",
	DesktopXFCE:           "XFCE",
	DesktopEDE:            "EDE",
	DesktopCinnamon:       "Cinnamon",
	DesktopPantheon:       "Pantheon",
	DesktopBudgie:         "Budgie",
	DesktopEnlightenment:  "Enlightenment",
	DesktopDDE:            "DDE",
	DesktopEndless:        "Endless",
	DesktopOld:            "Old",
}

// ParseDesktopEnvironment resolves a desktop environment by name,
// case-insensitively. Underscores are accepted in place of dashes.
func ParseDesktopEnvironment(s string) (DesktopEnvironment, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for env, name := range desktopNames {
		if strings.ToLower(name) == key {
			return env, nil
		}
	}
	return DesktopUnknown, NewValidationError("desktop environment", s, "not a registered desktop environment")
}

// AllDesktopEnvironments returns every registered environment in declaration order.
func AllDesktopEnvironments() []DesktopEnvironment {
	all := make([]DesktopEnvironment, 0, len(desktopNames))
	for env := DesktopGNOME; env <= DesktopOld; env++ {
		all = append(all, env)
	}
	return all
}

// String returns the registered name
func (d DesktopEnvironment) String() string {
	return desktopNames[d]
}

// IsValid returns true for registered environments.
func (d DesktopEnvironment) IsValid() bool {
	_, ok := desktopNames[d]
	return ok
}
