package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jarz/planter/pkg/auth"
	"github.com/jarz/planter/pkg/config"
	"github.com/jarz/planter/pkg/github"
	"github.com/jarz/planter/pkg/index"
	"github.com/jarz/planter/pkg/plan"
)

func main() {
	// 1. Parse Flags
	dryRun := flag.Bool("dry-run", false, "Print what would be created without creating issues")
	token := flag.String("token", "", "GitHub personal access token (or set GITHUB_TOKEN)")
	repoSpec := flag.String("repo", "", "Target repository in owner/name format (overrides config)")
	setRepo := flag.String("set-repo", "", "Set the default target repository")
	file := flag.String("file", "issues.json", "Path to the issues file")
	flag.Parse()

	// 2. Handle Set Repo
	if *setRepo != "" {
		if _, _, err := github.ParseRepoSpec(*setRepo); err != nil {
			log.Fatalf("Error: %v", err)
		}
		cfg := &config.Config{Repo: *setRepo}
		if err := config.Save(cfg); err != nil {
			log.Fatalf("Error saving config: %v", err)
		}
		fmt.Printf("Default repository set to: %s\n", *setRepo)
		return
	}

	// 3. Determine Repository (Priority: Flag > Config)
	selectedRepo := ""
	cfg, err := config.Load()
	if err == nil && cfg.Repo != "" {
		selectedRepo = cfg.Repo
	}
	if *repoSpec != "" {
		selectedRepo = *repoSpec
	}
	if selectedRepo == "" {
		log.Fatalf("Error: no repository given. Use --repo owner/name or --set-repo owner/name")
	}

	// 4. Load the Plan
	items, err := plan.LoadFile(*file)
	if err != nil {
		if os.IsNotExist(err) {
			log.Fatalf("Error: %s not found", *file)
		}
		log.Fatalf("Error parsing %s: %v", *file, err)
	}
	fmt.Printf("Loaded %d issues from %s\n", len(items), *file)

	// 5. Sort so dependencies are likely created before their dependents
	plan.Sort(items)

	idx := index.NewIssueIndex()
	ctx := context.Background()

	fmt.Printf("\nWill create %d issues\n", len(items))

	// 6. Dry Run: report the full set without touching the network
	if *dryRun {
		fmt.Print("DRY RUN MODE - No issues will be created\n\n")
		sub := github.NewSubmitter(nil, idx)
		sub.DryRun = true
		sub.Run(ctx, items)
		fmt.Println("\nDry run complete!")
		return
	}
	fmt.Println()

	// 7. Connect to the Repository
	tok := auth.ResolveToken(*token)
	if tok == "" {
		log.Fatalf("Error: GitHub token required. Provide --token or set %s (repo scope)", auth.TokenEnvVar)
	}
	client, err := github.NewClient(auth.NewHTTPClient(ctx, tok), selectedRepo)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := client.CheckAccess(ctx); err != nil {
		log.Fatalf("Error accessing repository: %v", err)
	}
	fmt.Printf("Connected to repository: %s\n\n", selectedRepo)

	// 8. Create Issues
	sub := github.NewSubmitter(client, idx)
	sub.Run(ctx, items)

	fmt.Println("\nIssue creation complete!")
	fmt.Printf("Created %d issues\n", idx.Len())
	fmt.Printf("View at: https://github.com/%s/issues\n", selectedRepo)
}
