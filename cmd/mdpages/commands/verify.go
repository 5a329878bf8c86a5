package commands

import (
	"fmt"

	"git.home.luguber.info/inful/mdpages/internal/errors"
	"git.home.luguber.info/inful/mdpages/internal/linkverify"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	Dir string `short:"d" help:"Site directory to verify (defaults to the configured output)"`
}

func (v *VerifyCmd) Run(_ *Global, root *CLI) error {
	dir := v.Dir
	if dir == "" {
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}
		dir = cfg.Output
	}

	issues, err := linkverify.VerifyDir(dir)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Printf("No broken references found in %s\n", dir)
		return nil
	}

	for _, issue := range issues {
		fmt.Printf("%s: broken reference %q\n", issue.Page, issue.Href)
	}
	return errors.ValidationFailed("site", fmt.Sprintf("%d broken reference(s)", len(issues)))
}
