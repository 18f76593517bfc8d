package main

import (
	"github.com/joho/godotenv"

	"mailsim/config"
	"mailsim/generator"
	"mailsim/storage"
	"mailsim/utils"
)

// mailgen generates the synthetic mail corpus configured via config.toml and
// the GEN_* environment variables. Do not run two instances against the same
// output directory; shard writes are atomic per file but not locked across
// processes.
func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		return
	}
	if cfg.Generator.Quiet {
		utils.Log.SetLevel(utils.WARN)
	}

	store, err := storage.NewStore(cfg.Generator.OutDir)
	if err != nil {
		utils.Log.Error("Failed to create output directory: %v", err)
		return
	}

	gen := generator.New(cfg, store, generator.DefaultRoster(), generator.DefaultStores(), generator.NewSource())
	if err := gen.Run(); err != nil {
		utils.Log.Error("Generation failed: %v", err)
	}
}
