package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevLane string `yaml:"prev_lane"`
	NextLane string `yaml:"next_lane"`
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`

	// Drag and drop
	Grab   string `yaml:"grab"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevLane: "h",
		NextLane: "l",
		PrevItem: "k",
		NextItem: "j",

		Grab:   "space",
		Drop:   "enter",
		Cancel: "esc",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	pairs := []struct {
		dst *string
		src string
	}{
		{&k.PrevLane, defaults.PrevLane},
		{&k.NextLane, defaults.NextLane},
		{&k.PrevItem, defaults.PrevItem},
		{&k.NextItem, defaults.NextItem},
		{&k.Grab, defaults.Grab},
		{&k.Drop, defaults.Drop},
		{&k.Cancel, defaults.Cancel},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.src
		}
	}
}
