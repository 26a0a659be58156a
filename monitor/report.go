package monitor

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/glucotrack/monitoring/alerts"
	"github.com/glucotrack/monitoring/users"
)

// Report summarizes the alerts created on a day: total count and per-type
// groups with the distinct subjects' names. It is a read-only projection;
// nothing in the rule engine depends on it.
type Report struct {
	Day    time.Time
	Total  int
	Groups []ReportGroup
}

type ReportGroup struct {
	Label    string
	Count    int
	Subjects []string
}

type Reporter struct {
	alerts alerts.Repository
	users  users.Repository
}

func NewReporter(alerts alerts.Repository, users users.Repository) (*Reporter, error) {
	return &Reporter{
		alerts: alerts,
		users:  users,
	}, nil
}

func (r *Reporter) Generate(ctx context.Context, day time.Time) (*Report, error) {
	created, err := r.alerts.ListCreatedOn(ctx, day)
	if err != nil {
		return nil, err
	}

	types, err := r.alerts.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(types))
	for _, alertType := range types {
		labels[alertType.Id.Hex()] = alertType.Label
	}

	subjectIds := make([]int, 0, len(created))
	for _, alert := range created {
		subjectIds = append(subjectIds, alert.UserId)
	}
	subjects, err := r.users.GetUsersByIds(ctx, subjectIds)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]alerts.Alert)
	for _, alert := range created {
		key := alert.AlertTypeId.Hex()
		grouped[key] = append(grouped[key], alert)
	}

	report := &Report{
		Day:   day,
		Total: len(created),
	}
	for typeId, group := range grouped {
		label, ok := labels[typeId]
		if !ok {
			// Orphaned type id; render it raw rather than dropping the group.
			label = typeId
		}
		report.Groups = append(report.Groups, ReportGroup{
			Label:    label,
			Count:    len(group),
			Subjects: subjectNames(group, subjects),
		})
	}
	sort.Slice(report.Groups, func(i, j int) bool {
		if report.Groups[i].Count != report.Groups[j].Count {
			return report.Groups[i].Count > report.Groups[j].Count
		}
		return report.Groups[i].Label < report.Groups[j].Label
	})

	return report, nil
}

// subjectNames resolves the distinct subject user ids of a group to full
// names, falling back to "UserId N" for directory misses.
func subjectNames(group []alerts.Alert, subjects map[int]users.User) []string {
	seen := make(map[int]struct{}, len(group))
	names := make([]string, 0, len(group))
	for _, alert := range group {
		if _, ok := seen[alert.UserId]; ok {
			continue
		}
		seen[alert.UserId] = struct{}{}

		if user, ok := subjects[alert.UserId]; ok {
			names = append(names, fmt.Sprintf("%s %s", user.FirstName, user.LastName))
		} else {
			names = append(names, fmt.Sprintf("UserId %d", alert.UserId))
		}
	}
	return names
}

func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "\n================= ALERTS REPORT =================")
	fmt.Fprintf(w, "Date: %s\n", r.Day.Format("2006-01-02"))
	fmt.Fprintf(w, "Total alerts generated today: %d\n", r.Total)
	if r.Total > 0 {
		fmt.Fprintln(w, "\n| Alert Type              | Count | Users")
		fmt.Fprintln(w, "|-------------------------|-------|------------------------------")
		for _, group := range r.Groups {
			fmt.Fprintf(w, "| %-23s | %5d | %s\n", group.Label, group.Count, strings.Join(group.Subjects, ", "))
		}
	} else {
		fmt.Fprintln(w, "No alerts generated today.")
	}
	fmt.Fprint(w, "=================================================\n\n")
}
