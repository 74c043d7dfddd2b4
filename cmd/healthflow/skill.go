// ABOUTME: Install Claude Code skill for healthflow
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the healthflow skill for Claude Code.

This copies the skill definition to ~/.claude/skills/healthflow/
so Claude Code can use healthflow commands contextually.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		_, err = installSkill(home, cmd.InOrStdin(), skillSkipConfirm)
		return err
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

// installSkill writes the embedded skill under home and reports whether it
// was installed.
func installSkill(home string, in io.Reader, skipConfirm bool) (bool, error) {
	skillDir := filepath.Join(home, ".claude", "skills", "healthflow")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	fmt.Println("┌─────────────────────────────────────────────────────────────┐")
	fmt.Println("│             HealthFlow Skill for Claude Code                │")
	fmt.Println("└─────────────────────────────────────────────────────────────┘")
	fmt.Println()
	fmt.Println("This will install the healthflow skill, enabling Claude Code to:")
	fmt.Println()
	fmt.Println("  • Check today's recovery from HRV")
	fmt.Println("  • Generate surgery-aware daily workouts")
	fmt.Println("  • Log workouts and track your streak")
	fmt.Println("  • Check meals against your medications")
	fmt.Println()
	fmt.Println("Destination:")
	fmt.Printf("  %s\n", skillPath)
	fmt.Println()

	if _, err := os.Stat(skillPath); err == nil {
		fmt.Println("Note: A skill file already exists and will be overwritten.")
		fmt.Println()
	}

	if !skipConfirm {
		fmt.Print("Install the healthflow skill? [y/N] ")
		reader := bufio.NewReader(in)
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			return false, fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Installation canceled.")
			return false, nil
		}
		fmt.Println()
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return false, fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		return false, fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return false, fmt.Errorf("failed to write skill file: %w", err)
	}

	fmt.Println("✓ Installed healthflow skill successfully!")
	fmt.Println()
	fmt.Println("Try asking Claude: \"How recovered am I today?\" or \"Plan today's workout\"")
	return true, nil
}
