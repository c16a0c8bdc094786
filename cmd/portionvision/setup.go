package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/raine/portionvision/config"
	"golang.org/x/term"
)

// configMissing reports whether no settings have been configured yet,
// either in the environment or the config file.
func configMissing() bool {
	for _, v := range []string{"PV_DB_PATH", "PV_CATALOG_URL", "PV_CAMERA_FACING"} {
		if os.Getenv(v) != "" {
			return false
		}
	}
	path, err := config.ConfigFilePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return os.IsNotExist(err)
}

// isInteractiveTerminal returns true if both stdin and stdout are TTYs.
func isInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runSetupWizard collects the optional settings interactively on first run.
// Returns false only if the user aborted.
func runSetupWizard() bool {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	fmt.Println()
	fmt.Println(titleStyle.Render("🍽  PortionVision - First-time Setup"))
	fmt.Println()

	var catalogURL string
	facing := "environment"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Catalog URL (optional)").
				Description("JSON endpoint for a custom food dataset; leave empty for the builtin catalog").
				Value(&catalogURL),
			huh.NewSelect[string]().
				Title("Camera").
				Options(
					huh.NewOption("Rear camera (environment)", "environment"),
					huh.NewOption("Front camera (user)", "user"),
				).
				Value(&facing),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\nSetup cancelled.")
			return false
		}
		fmt.Printf("\nError: %v\n", err)
		return false
	}

	settings := map[string]string{
		"PV_CAMERA_FACING": facing,
	}
	if catalogURL != "" {
		settings["PV_CATALOG_URL"] = catalogURL
	}

	configPath, err := config.ConfigFilePath()
	if err == nil {
		err = godotenv.Write(settings, configPath)
	}
	if err != nil {
		fmt.Printf("\nError saving configuration: %v\n", err)
		return false
	}

	for k, v := range settings {
		os.Setenv(k, v)
	}

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)
	pathStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	fmt.Println()
	fmt.Println(successStyle.Render("✓ Configuration saved"))
	fmt.Println(pathStyle.Render("  " + configPath))
	fmt.Println()

	return true
}
