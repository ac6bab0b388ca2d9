package toolserver

import (
	"context"

	"go.stonic.dev/stonic/internal/core/domain"
)

type queryArgs struct {
	Query string `json:"query" jsonschema:"spoken name of the file or folder"`
}

type commandArgs struct {
	Command string `json:"command" jsonschema:"free-text instruction such as 'create folder reports' or 'rename notes to old notes'"`
}

type renameArgs struct {
	Query   string `json:"query" jsonschema:"spoken name of the file or folder to rename"`
	NewName string `json:"new_name" jsonschema:"new base name or absolute path"`
}

type deleteArgs struct {
	Query     string `json:"query" jsonschema:"spoken name of the file or folder to delete"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"delete non-empty folders"`
}

type nameArgs struct {
	Name string `json:"name" jsonschema:"name of the new folder"`
}

type appArgs struct {
	App string `json:"app" jsonschema:"spoken application name"`
}

type setSleepArgs struct {
	Sleeping bool `json:"sleeping" jsonschema:"true to sleep, false to wake"`
}

type textArgs struct {
	Text string `json:"text" jsonschema:"what the user said"`
}

type emptyArgs struct{}

// itemResult carries kind and source as strings so the output schema stays plain.
type itemResult struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Source string `json:"source,omitempty"`
	Score  int    `json:"score,omitempty"`
}

type messageResult struct {
	Message string `json:"message"`
}

type refreshResult struct {
	Cleared int `json:"cleared"`
}

type launchResult struct {
	Command string `json:"command"`
}

type sleepResult struct {
	Sleeping bool   `json:"sleeping"`
	Status   string `json:"status"`
}

type intentResult struct {
	Reply    string `json:"reply"`
	Sleeping bool   `json:"sleeping"`
}

func fromItem(item domain.Item) itemResult {
	return itemResult{Name: item.Name, Path: item.Path, Kind: item.Kind.String()}
}

func fromResolution(r domain.Resolution) itemResult {
	out := fromItem(r.Item)
	out.Source = r.Source.String()
	out.Score = r.Score
	return out
}

func (s *Server) register() {
	a := s.assistant

	addTool(s, "resolve_path", "Find the file or folder the user means and return its absolute path.",
		func(ctx context.Context, in queryArgs) (itemResult, error) {
			r, err := a.Resolve(ctx, in.Query)
			if err != nil {
				return itemResult{}, err
			}
			return fromResolution(r), nil
		})

	addTool(s, "open_path", "Find a file or folder by spoken name and open it.",
		func(ctx context.Context, in queryArgs) (itemResult, error) {
			r, err := a.Open(ctx, in.Query)
			if err != nil {
				return itemResult{}, err
			}
			return fromResolution(r), nil
		})

	addTool(s, "folder_file", "Open, create, rename or delete files and folders from one free-text command.",
		func(ctx context.Context, in commandArgs) (messageResult, error) {
			return messageResult{Message: a.Do(ctx, in.Command)}, nil
		})

	addTool(s, "rename_path", "Rename a file or folder found by spoken name.",
		func(ctx context.Context, in renameArgs) (itemResult, error) {
			item, err := a.Rename(ctx, in.Query, in.NewName)
			if err != nil {
				return itemResult{}, err
			}
			return fromItem(item), nil
		})

	addTool(s, "delete_path", "Delete a file or folder found by spoken name.",
		func(ctx context.Context, in deleteArgs) (itemResult, error) {
			item, err := a.Delete(ctx, in.Query, in.Recursive)
			if err != nil {
				return itemResult{}, err
			}
			return fromItem(item), nil
		})

	addTool(s, "create_folder", "Create a new folder in the base directory.",
		func(ctx context.Context, in nameArgs) (itemResult, error) {
			item, err := a.CreateFolder(ctx, in.Name)
			if err != nil {
				return itemResult{}, err
			}
			return fromItem(item), nil
		})

	addTool(s, "refresh_cache", "Forget every remembered path so the next lookups search the disk again.",
		func(ctx context.Context, _ emptyArgs) (refreshResult, error) {
			return refreshResult{Cleared: a.RefreshCache(ctx)}, nil
		})

	addTool(s, "launch_app", "Start an application by spoken name.",
		func(ctx context.Context, in appArgs) (launchResult, error) {
			cmd, err := a.Launch(ctx, in.App)
			if err != nil {
				return launchResult{}, err
			}
			return launchResult{Command: cmd}, nil
		})

	addTool(s, "get_sleep_state", "Report whether the assistant is sleeping.",
		func(_ context.Context, _ emptyArgs) (sleepResult, error) {
			sleeping := a.Sleeping()
			return sleepResult{Sleeping: sleeping, Status: domain.SleepStatus(sleeping)}, nil
		})

	addTool(s, "set_sleep_state", "Put the assistant to sleep or wake it up.",
		func(_ context.Context, in setSleepArgs) (sleepResult, error) {
			if err := a.SetSleeping(in.Sleeping); err != nil {
				return sleepResult{}, err
			}
			return sleepResult{Sleeping: in.Sleeping, Status: domain.SleepStatus(in.Sleeping)}, nil
		})

	addTool(s, "process_sleep_intent", "Handle a spoken sleep or wake phrase.",
		func(_ context.Context, in textArgs) (intentResult, error) {
			reply, err := a.ProcessSleepIntent(in.Text)
			if err != nil {
				return intentResult{}, err
			}
			return intentResult{Reply: reply, Sleeping: a.Sleeping()}, nil
		})
}
