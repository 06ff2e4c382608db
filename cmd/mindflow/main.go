package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mindflow-backend/infrastructure/config"
	"mindflow-backend/infrastructure/di"
	"mindflow-backend/interfaces/http/rest"
)

var dbPath string

func main() {
	// Default database location
	home, _ := os.UserHomeDir()
	defaultDB := filepath.Join(home, ".mindflow", "mindflow.db")

	rootCmd := &cobra.Command{
		Use:   "mindflow",
		Short: "Free-writing notes with automatic classification",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "database path")

	rootCmd.AddCommand(captureCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(refineCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(graphCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getContainer(ctx context.Context) (*di.Container, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	cfg := &config.Config{
		Environment:    "development",
		StorageBackend: "sqlite",
		SQLitePath:     dbPath,
		JWTIssuer:      "mindflow-backend",
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return di.InitializeContainer(ctx, cfg)
}

func captureCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "capture [content]",
		Short: "Analyze, refine, and save a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")

			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			result, err := c.SaveNoteSaga.Run(cmd.Context(), content, title)
			if err != nil {
				return err
			}

			doc := result.Document
			fmt.Printf("Saved: %s\n", doc.ID)
			fmt.Printf("Category: %s\n", doc.PrimaryCategoryName)
			if len(doc.Tags) > 0 {
				fmt.Printf("Tags: %s\n", strings.Join(doc.Tags, ", "))
			}
			if doc.RefinedContent != "" {
				fmt.Printf("Refined: %s\n", truncate(doc.RefinedContent, 80))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [content]",
		Short: "Classify text without saving it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")

			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			output, err := c.Analyzer.Analyze(cmd.Context(), content)
			if err != nil {
				return err
			}

			for _, r := range output.Results {
				fmt.Printf("%s %s\n", r.Icon, strings.Join(r.Path, " > "))
				if r.Summary != "" {
					fmt.Printf("   %s\n", r.Summary)
				}
				for _, todo := range r.Todos {
					fmt.Printf("   [ ] %s\n", todo)
				}
			}
			if len(output.Tags) > 0 {
				fmt.Printf("Tags: %s\n", strings.Join(output.Tags, ", "))
			}
			if len(output.Topics) > 0 {
				fmt.Printf("Topics: %s\n", strings.Join(output.Topics, ", "))
			}
			return nil
		},
	}
}

func refineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refine [content]",
		Short: "Clean up raw text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")

			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			output, err := c.Analyzer.Refine(cmd.Context(), content)
			if err != nil {
				return err
			}

			fmt.Println(output.RefinedContent)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	var category, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			docs := c.Store.Documents()
			switch {
			case category != "":
				docs = c.Store.FilterByCategory(category)
			case tag != "":
				docs = c.Store.FilterByTag(tag)
			}

			if len(docs) == 0 {
				fmt.Println("No documents yet. Use 'mindflow capture' to create one.")
				return nil
			}

			for _, d := range docs {
				fmt.Printf("%s  [%s]  %s\n", d.ID, d.PrimaryCategoryName, truncate(d.Label(), 60))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category id")
	cmd.Flags().StringVar(&tag, "tag", "", "filter by exact tag")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show document details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			doc, err := c.Store.GetDocument(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("ID:       %s\n", doc.ID)
			fmt.Printf("Title:    %s\n", doc.Label())
			fmt.Printf("Category: %s\n", doc.PrimaryCategoryName)
			fmt.Printf("Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("Content:\n%s\n", doc.Content)
			if doc.RefinedContent != "" {
				fmt.Printf("\nRefined:\n%s\n", doc.RefinedContent)
			}
			if len(doc.Tags) > 0 {
				fmt.Printf("\nTags:\n")
				for _, t := range doc.Tags {
					fmt.Printf("  - %s\n", t)
				}
			}
			return nil
		},
	}
}

func tasksCmd() *cobra.Command {
	var add, toggle, category string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List or manage tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			if add != "" {
				if category == "" {
					category = "general"
				}
				task, err := c.Store.CreateTask(cmd.Context(), category, "", add)
				if err != nil {
					return err
				}
				if task == nil {
					fmt.Println("Nothing to add.")
					return nil
				}
				fmt.Printf("Added task: %s\n", task.ID)
				return nil
			}

			if toggle != "" {
				task, err := c.Store.ToggleTask(cmd.Context(), toggle)
				if err != nil {
					return err
				}
				if task == nil {
					return fmt.Errorf("task not found: %s", toggle)
				}
				state := "open"
				if task.Completed {
					state = "done"
				}
				fmt.Printf("Task %s is now %s\n", task.ID, state)
				return nil
			}

			tasks := c.Store.Tasks()
			if category != "" {
				tasks = c.Store.TasksForCategory(category)
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks yet.")
				return nil
			}
			for _, t := range tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %s\n", mark, t.ID, t.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "add a task with this title")
	cmd.Flags().StringVar(&toggle, "toggle", "", "toggle a task by id")
	cmd.Flags().StringVar(&category, "category", "", "category id")
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List accumulated categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			cats := c.Store.Categories()
			if len(cats) == 0 {
				fmt.Println("No categories yet. Categories emerge from saved notes.")
				return nil
			}
			for _, cat := range cats {
				fmt.Printf("%s  %s\n", cat.ID, cat.Name)
			}
			return nil
		},
	}
}

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Show the tag co-occurrence graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			graph := c.Store.BuildGraph()
			fmt.Printf("%d nodes, %d edges\n", graph.NodeCount(), graph.EdgeCount())
			for _, node := range graph.Nodes {
				fmt.Printf("%-10s %s\n", node.Kind, node.Label)
			}
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server over the local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Shutdown()

			fmt.Printf("Listening on %s (db: %s)\n", addr, dbPath)
			return http.ListenAndServe(addr, rest.NewRouter(c).Setup())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "server address")
	return cmd
}

func truncate(s string, max int) string {
	// Replace newlines with spaces for display
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
