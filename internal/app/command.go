package app

import (
	"context"
	"errors"
	"fmt"

	"go.stonic.dev/stonic/internal/core/domain"
)

// Do runs one free-text file or folder command and returns what to say back.
// Failures are reported in the message.
func (a *App) Do(ctx context.Context, text string) string {
	cmd, err := domain.ParseCommand(text)
	if err != nil {
		return commandErrorMessage(err)
	}

	a.logger.Debug("command", "op", cmd.Op.String(), "target", cmd.Target)

	switch cmd.Op {
	case domain.CommandCreateFolder:
		item, err := a.maintainer.CreateFolder(cmd.Target)
		if err != nil {
			return fmt.Sprintf("Could not create folder %s: %v", cmd.Target, err)
		}
		return "Folder created: " + item.Path

	case domain.CommandRename:
		res, err := a.resolver.Resolve(ctx, cmd.Target)
		if err != nil {
			return "Could not find item to rename: " + cmd.Target
		}
		item, err := a.maintainer.Rename(res.Path, cmd.NewName)
		if err != nil {
			return fmt.Sprintf("Rename failed: %v", err)
		}
		return "Renamed to: " + item.Path

	case domain.CommandDelete:
		res, err := a.resolver.Resolve(ctx, cmd.Target)
		if err != nil {
			return "Could not find item to delete: " + cmd.Target
		}
		item, err := a.maintainer.Delete(res.Path, false)
		if err != nil {
			return fmt.Sprintf("Delete failed: %v", err)
		}
		return "Deleted: " + item.Path

	default:
		res, err := a.Open(ctx, cmd.Target)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Sprintf("Could not find '%s' in common locations. Try being more specific or check if the item exists.", cmd.Target)
		}
		if err != nil {
			return fmt.Sprintf("Could not open %s: %v", cmd.Target, err)
		}
		if res.IsDir() {
			return fmt.Sprintf("Opened folder: %s at %s", res.Name, res.Path)
		}
		return fmt.Sprintf("Opened file: %s at %s", res.Name, res.Path)
	}
}

func commandErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRenameCommand):
		return "Invalid rename command. Use: rename <old name> to <new name>"
	case errors.Is(err, domain.ErrEmptyName):
		return "Please say a name for the new folder."
	default:
		return "I did not catch which file or folder you mean."
	}
}
