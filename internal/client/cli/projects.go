package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/syncengine"
)

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// report prints err, with resolution hints for a conflict.
func (a *App) report(err error) {
	var ce *syncengine.ConflictError
	if errors.As(err, &ce) {
		fmt.Fprintf(a.out, "Conflict detected for %s: the project changed on another device.\n", ce.ID)
		fmt.Fprintf(a.out, "Use 'keep-local %s' or 'keep-cloud %s'\n", ce.ID, ce.ID)
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err)
}

// idOrPrompt returns id, asking for it when empty.
func (a *App) idOrPrompt(id, prompt string) (string, error) {
	if id != "" {
		return id, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) pull(ctx context.Context, fn func(context.Context) (*syncengine.PullReport, error)) {
	report, err := fn(ctx)
	if err != nil {
		a.report(err)
		return
	}
	if report == nil {
		return
	}
	fmt.Fprintf(a.out, "Pulled: %d new, %d updated\n", report.Created, report.Updated)
	for _, id := range report.Conflicts {
		a.report(&syncengine.ConflictError{ID: id})
	}
	for _, id := range report.DecryptFailed {
		fmt.Fprintf(a.out, "Project %s could not be decrypted, local copy kept\n", id)
	}
}

func (a *App) New(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "Enter text", a.out)
	if err != nil {
		return err
	}

	if a.openID != "" {
		_ = a.Close(ctx)
	}

	p, err := a.projects.Create(ctx, title, []byte(text))
	if err != nil {
		a.report(err)
		if p == nil {
			return err
		}
	}
	a.openID = p.ID
	fmt.Fprintf(a.out, "Created %s\n", p.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	rows, err := a.projects.List(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No projects")
		return nil
	}

	for _, r := range rows {
		var flags []string
		if r.NeedsSync {
			flags = append(flags, "unsynced")
		}
		if r.IsArchived {
			flags = append(flags, "archived")
		}
		if r.Flag != "" {
			flags = append(flags, r.Flag)
		}
		title := r.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(a.out, "%s  %-32s  %s  %s\n", r.ID, title, r.LastEditedAt.Local().Format("2006-01-02 15:04"), strings.Join(flags, ","))
	}
	return nil
}

func (a *App) Open(ctx context.Context, id string) error {
	id, err := a.idOrPrompt(id, "Enter project id to open")
	if err != nil {
		return err
	}

	p, err := a.projects.Get(ctx, id)
	if err != nil {
		a.report(err)
		return err
	}

	if a.openID != "" && a.openID != id {
		_ = a.Close(ctx)
	}
	a.openID = id
	a.printProject(p)
	return nil
}

func (a *App) printProject(p *models.Project) {
	fmt.Fprintf(a.out, "# %s\n", p.Title)
	if p.Deadline != nil {
		fmt.Fprintf(a.out, "Deadline: %s\n", p.Deadline.Format(DateLayout))
	}
	if p.IsArchived {
		fmt.Fprintln(a.out, "Archived")
	}
	if p.DecryptFailed {
		fmt.Fprintln(a.out, "Warning: the remote copy of this project could not be decrypted")
	}
	fmt.Fprintln(a.out, string(p.Content))
}

// Edit asks which field of the open project to change.
func (a *App) Edit(ctx context.Context) error {
	if a.openID == "" {
		fmt.Fprintln(a.out, "No project open, use 'open <id>' or 'new'")
		return nil
	}

	field, err := getSimpleText(a.reader, "Field to edit (title|text|append|deadline|archive|unarchive)", a.out)
	if err != nil {
		return err
	}

	var change func(p *models.Project)
	switch field {
	case "title":
		title, err := getSimpleText(a.reader, "Enter title", a.out)
		if err != nil {
			return err
		}
		change = func(p *models.Project) { p.Title = title }
	case "text", "append":
		text, err := getMultiline(a.reader, "Enter text", a.out)
		if err != nil {
			return err
		}
		if field == "append" {
			change = func(p *models.Project) {
				if len(p.Content) > 0 {
					p.Content = append(p.Content, '\n')
				}
				p.Content = append(p.Content, text...)
			}
		} else {
			change = func(p *models.Project) { p.Content = []byte(text) }
		}
	case "deadline":
		d, err := getDate(a.reader, "Enter deadline", a.out)
		if err != nil {
			a.report(err)
			return err
		}
		change = func(p *models.Project) { p.Deadline = d }
	case "archive", "unarchive":
		archived := field == "archive"
		change = func(p *models.Project) { p.IsArchived = archived }
	default:
		fmt.Fprintln(a.out, "Unknown field:", field)
		return nil
	}

	if _, err := a.projects.Edit(ctx, a.openID, change); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Saved")
	return nil
}

// Close leaves the editor; unsynced edits are pushed now.
func (a *App) Close(ctx context.Context) error {
	if a.openID == "" {
		fmt.Fprintln(a.out, "No project open")
		return nil
	}
	id := a.openID
	a.openID = ""

	if err := a.projects.Close(ctx, id); err != nil {
		a.report(err)
		return err
	}
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	id, err := a.idOrPrompt(id, "Enter project id to delete")
	if err != nil {
		return err
	}
	if id == a.openID {
		a.openID = ""
	}

	if err := a.projects.Delete(ctx, id); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

// Sync pushes every unsynced project, then pulls.
func (a *App) Sync(ctx context.Context) error {
	pushErr := a.engine.OnAppBackground(ctx)
	if pushErr != nil {
		a.report(pushErr)
	}
	a.pull(ctx, a.engine.OnAppForeground)
	return pushErr
}

func (a *App) Retry(ctx context.Context, id string) error {
	id, err := a.idOrPrompt(id, "Enter project id to push")
	if err != nil {
		return err
	}
	if err := a.engine.Retry(ctx, id); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Synced")
	return nil
}

func (a *App) KeepLocal(ctx context.Context, id string) error {
	id, err := a.idOrPrompt(id, "Enter conflicting project id")
	if err != nil {
		return err
	}
	if err := a.engine.OnResolveConflictKeepLocal(ctx, id); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Local copy uploaded")
	return nil
}

func (a *App) KeepCloud(ctx context.Context, id string) error {
	id, err := a.idOrPrompt(id, "Enter conflicting project id")
	if err != nil {
		return err
	}
	if err := a.engine.OnResolveConflictKeepCloud(ctx, id); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Remote copy restored")
	if id == a.openID {
		if p, err := a.projects.Get(ctx, id); err == nil {
			a.printProject(p)
		}
	}
	return nil
}

func (a *App) ShowStatus(context.Context) error {
	fmt.Fprintf(a.out, "Mode: %s\n", a.getMode())
	fmt.Fprintf(a.out, "Sync: %s\n", a.engine.Status())
	if id := a.engine.Pending(); id != "" {
		fmt.Fprintf(a.out, "Waiting to push: %s\n", id)
	}
	return nil
}
