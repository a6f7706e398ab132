package module

import "movielens/internal/platform/config"

// Options holds configuration settings for the recommend module
type Options struct {
	NumResults int
	RankItems  int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	pc := cfg.Prefix("PERSONALIZE_")
	return Options{
		NumResults: pc.MayPositiveInt("NUM_RESULTS", 50),
		RankItems:  pc.MayPositiveInt("RANK_ITEMS", 20),
	}
}
