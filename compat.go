//go:build !compat_0_1_1

package libloc

import "strings"

// FlagNames returns the set bits of n's flags as their lowercase names.
// Added after the 0.1.1 API freeze; build with -tags compat_0_1_1 to get
// the frozen method set back (SPEC_FULL.md §6).
func (n *Network) FlagNames() []string {
	var names []string
	for _, f := range []struct {
		bit  NetworkFlags
		name string
	}{
		{FlagAnonymousProxy, "anonymous_proxy"},
		{FlagSatelliteProvider, "satellite_provider"},
		{FlagAnycast, "anycast"},
		{FlagDrop, "drop"},
	} {
		if n.Flags()&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

func (f NetworkFlags) String() string {
	var b strings.Builder
	first := true
	write := func(s string) {
		if !first {
			b.WriteByte('|')
		}
		b.WriteString(s)
		first = false
	}
	if f&FlagAnonymousProxy != 0 {
		write("anonymous_proxy")
	}
	if f&FlagSatelliteProvider != 0 {
		write("satellite_provider")
	}
	if f&FlagAnycast != 0 {
		write("anycast")
	}
	if f&FlagDrop != 0 {
		write("drop")
	}
	if first {
		return "none"
	}
	return b.String()
}
