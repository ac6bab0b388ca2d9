package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// CommandOp is the operation a free-text command asks for.
type CommandOp uint8

const (
	// CommandOpen resolves the target and opens it.
	CommandOpen CommandOp = iota
	// CommandRename resolves the target and renames it to NewName.
	CommandRename
	// CommandDelete resolves the target and deletes it.
	CommandDelete
	// CommandCreateFolder creates a folder named Target under the base directory.
	CommandCreateFolder
)

// String returns the lower-case name of the operation.
func (o CommandOp) String() string {
	switch o {
	case CommandOpen:
		return "open"
	case CommandRename:
		return "rename"
	case CommandDelete:
		return "delete"
	case CommandCreateFolder:
		return "create_folder"
	default:
		return "unknown"
	}
}

// Command is a parsed folder/file instruction.
type Command struct {
	Op      CommandOp
	Target  string
	NewName string
}

var (
	createFolderRe = regexp.MustCompile(`(?i)^\s*(?:create|make)\s+(?:a\s+)?(?:new\s+)?folder\b\s*(?:named\s+|called\s+)?(.*?)\s*$`)
	renameRe       = regexp.MustCompile(`(?i)^\s*rename\s+(.+?)\s+to\s+(.+?)\s*$`)
	renamePrefixRe = regexp.MustCompile(`(?i)^\s*rename\b`)
	deleteRe       = regexp.MustCompile(`(?i)^\s*(?:delete|remove)\s+(.+?)\s*$`)
)

// fillerWords are dropped anywhere in open targets.
var fillerWords = map[string]struct{}{
	"open":   {},
	"folder": {},
	"file":   {},
	"find":   {},
	"search": {},
	"in":     {},
	"drive":  {},
	"the":    {},
	"c":      {},
	"d":      {},
	"e":      {},
}

// leadingWords are dropped from the front of rename and delete targets only,
// so names such as "in progress" survive.
var leadingWords = map[string]struct{}{
	"the":    {},
	"a":      {},
	"file":   {},
	"folder": {},
}

// ParseCommand turns one spoken instruction into a Command.
// Folder names and new names keep their case; targets are resolved later and may be any case.
func ParseCommand(text string) (Command, error) {
	if m := createFolderRe.FindStringSubmatch(text); m != nil {
		if m[1] == "" {
			return Command{}, ErrEmptyName
		}
		return Command{Op: CommandCreateFolder, Target: m[1]}, nil
	}

	if renamePrefixRe.MatchString(text) {
		m := renameRe.FindStringSubmatch(text)
		if m == nil {
			return Command{}, ErrInvalidRenameCommand
		}
		target := trimLeading(m[1])
		if target == "" {
			return Command{}, ErrInvalidRenameCommand
		}
		return Command{Op: CommandRename, Target: target, NewName: m[2]}, nil
	}

	if m := deleteRe.FindStringSubmatch(text); m != nil {
		target := trimLeading(m[1])
		if target == "" {
			return Command{}, zerr.With(zerr.Wrap(ErrInvalidCommand, ""), "command", text)
		}
		return Command{Op: CommandDelete, Target: target}, nil
	}

	target := StripFiller(text)
	if target == "" {
		return Command{}, zerr.With(zerr.Wrap(ErrInvalidCommand, ""), "command", text)
	}
	return Command{Op: CommandOpen, Target: target}, nil
}

// StripFiller lower-cases text and removes filler words at word level.
func StripFiller(text string) string {
	words := strings.Fields(strings.ToLower(text))
	kept := words[:0]
	for _, w := range words {
		if _, ok := fillerWords[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// trimLeading lower-cases text and drops articles and kind words before the name.
func trimLeading(text string) string {
	words := strings.Fields(strings.ToLower(text))
	for len(words) > 0 {
		if _, ok := leadingWords[words[0]]; !ok {
			break
		}
		words = words[1:]
	}
	return strings.Join(words, " ")
}
