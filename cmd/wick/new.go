package main

import (
	"fmt"
	"os"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

const starterTemplate = `// %s
print("hello, wick");
`

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a starter Wick script",
	Long:  "Write a starter <name>.wk file containing a hello-world print statement.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			prompt := &survey.Input{Message: "Script name:", Default: "main"}
			if err := survey.AskOne(prompt, &name); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}

		path, err := scaffoldScript(name)
		if err != nil {
			return err
		}

		fmt.Printf("Created %s\n", path)
		fmt.Printf("Run it with: wick run %s\n", path)
		return nil
	},
}

// scaffoldScript validates name and writes a starter <name>.wk file,
// returning its path. Split out from the command's RunE closure so the
// validation rules can be exercised directly in tests.
func scaffoldScript(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".wk")
	if name == "" {
		return "", fmt.Errorf("script name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return "", fmt.Errorf("script name cannot contain path separators")
	}

	path := name + ".wk"
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	content := fmt.Sprintf(starterTemplate, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
