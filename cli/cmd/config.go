package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vippsas/quotecurl/quoteparser"
)

// Config is the optional quotecurl.yaml in the working directory. A word
// list given here replaces the built-in default for that category; the
// command line flags then append on top.
type Config struct {
	Contractions quoteparser.WordLists `yaml:"contractions"`
}

func LoadConfig() (Config, error) {
	var result Config

	yamlFile, err := os.ReadFile("quotecurl.yaml")
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(yamlFile, &result)
	if err != nil {
		return Config{}, err
	}
	return result, nil
}
