package gamestore

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	AwsRegion       string
	AwsProfile      string
	AccessKeyId     string
	SecretAccessKey string

	MoveSetBucket        string
	BoardBucket          string
	PlayerIndexTableName string

	LocalDbPath string
}

var defaultEnvFiles = []string{
	"./configs/catanstore/app.env",
}

// LoadConfig reads the optional env files and lets OS environment
// variables override them.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New(), defaultEnvFiles)
}

func loadConfig(v *viper.Viper, envFiles []string) (Config, error) {
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_PROFILE", "")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("MOVESET_BUCKET", "catan-movesets")
	v.SetDefault("BOARD_BUCKET", "catan-boards")
	v.SetDefault("PLAYER_INDEX_TABLE", "Player-MoveSet-Board")
	v.SetDefault("LOCAL_DB_PATH", "./data/catanstore.db")

	if err := loadEnvFiles(v, envFiles); err != nil {
		return Config{}, fmt.Errorf("failed to load config file: %w", err)
	}
	v.AutomaticEnv()

	return Config{
		AwsRegion:            v.GetString("AWS_REGION"),
		AwsProfile:           v.GetString("AWS_PROFILE"),
		AccessKeyId:          v.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey:      v.GetString("AWS_SECRET_ACCESS_KEY"),
		MoveSetBucket:        v.GetString("MOVESET_BUCKET"),
		BoardBucket:          v.GetString("BOARD_BUCKET"),
		PlayerIndexTableName: v.GetString("PLAYER_INDEX_TABLE"),
		LocalDbPath:          v.GetString("LOCAL_DB_PATH"),
	}, nil
}

// loadEnvFiles merges every env file that exists; missing files are skipped.
func loadEnvFiles(v *viper.Viper, filenames []string) error {
	for _, file := range filenames {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			return err
		}
	}
	return nil
}
