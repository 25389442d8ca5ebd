package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Replay: ReplayConfig{
			BoardSize: 19,
			Workers:   1,
			Out:       "replay.jsonl.gz",
			Strict:    false,
		},
	}
}
