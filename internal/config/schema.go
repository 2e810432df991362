package config

// Config represents the puzzle run configuration
type Config struct {
	Inputs    map[int]string  `yaml:"inputs"`
	Calories  CaloriesConfig  `yaml:"calories"`
	Rucksacks RucksacksConfig `yaml:"rucksacks"`
	Signal    SignalConfig    `yaml:"signal"`
}

// CaloriesConfig tunes day 1
type CaloriesConfig struct {
	Top int `yaml:"top"`
}

// RucksacksConfig tunes day 3
type RucksacksConfig struct {
	GroupSize int `yaml:"group_size"`
}

// SignalConfig holds the marker window sizes for day 6
type SignalConfig struct {
	PacketWindow  int `yaml:"packet_window"`
	MessageWindow int `yaml:"message_window"`
}
