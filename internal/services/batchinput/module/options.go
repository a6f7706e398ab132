package module

import "movielens/internal/platform/config"

// Options holds configuration settings for the batchinput module
type Options struct {
	NumRecords   int
	ItemsPerRank int
	OutputDir    string
	KeyPrefix    string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	bc := cfg.Prefix("BATCH_")
	return Options{
		NumRecords:   bc.MayPositiveInt("NUM_RECORDS", 50),
		ItemsPerRank: bc.MayPositiveInt("ITEMS_PER_RANK", 20),
		OutputDir:    bc.MayPath("OUTPUT_DIR", "."),
		KeyPrefix:    bc.MayString("KEY_PREFIX", "input/"),
	}
}
