package directory

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// AddAnnouncement publishes an announcement. An empty visibleTo defaults to
// everyone. The returned id is the assigned one.
func (d *Directory) AddAnnouncement(title, content, author string, authorID int, priority string, visibleTo []string) (int, error) {
	if title == "" || content == "" {
		return 0, fmt.Errorf("%w: title and content are required", core.ErrInvalidInput)
	}
	if priority == "" {
		priority = "Medium"
	}
	if len(visibleTo) == 0 {
		visibleTo = []string{"All"}
	}

	var newID int
	err := d.db.Dashboard.Transact(func(doc *model.DashboardDocument) error {
		for i := range doc.Announcements {
			if doc.Announcements[i].ID >= newID {
				newID = doc.Announcements[i].ID
			}
		}
		newID++
		doc.Announcements = append(doc.Announcements, model.Announcement{
			ID:          newID,
			Title:       title,
			Content:     content,
			Author:      author,
			AuthorID:    authorID,
			Date:        utils.NowISO(),
			Priority:    priority,
			VisibleTo:   visibleTo,
			Attachments: []string{},
			ReadBy:      []int{},
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// AnnouncementsForEmployee filters by audience tag: "All", the employee's
// department, or the employee id as a string. Newest first; ISO dates sort
// lexicographically, so a plain string sort is chronological.
func (d *Directory) AnnouncementsForEmployee(employeeID int, department string) ([]model.Announcement, error) {
	doc, err := d.db.Dashboard.Load()
	if err != nil {
		return nil, err
	}
	idTag := strconv.Itoa(employeeID)
	visible := utils.Filter(doc.Announcements, func(a model.Announcement) bool {
		return slices.Contains(a.VisibleTo, "All") ||
			slices.Contains(a.VisibleTo, department) ||
			slices.Contains(a.VisibleTo, idTag)
	})
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].Date > visible[j].Date
	})
	return visible, nil
}

// Announcements lists all announcements newest first; limit 0 means all.
func (d *Directory) Announcements(limit int) ([]model.Announcement, error) {
	doc, err := d.db.Dashboard.Load()
	if err != nil {
		return nil, err
	}
	anns := doc.Announcements
	sort.Slice(anns, func(i, j int) bool {
		return anns[i].Date > anns[j].Date
	})
	if limit > 0 && limit < len(anns) {
		anns = anns[:limit]
	}
	return anns, nil
}

// MarkAnnouncementRead records that an employee saw an announcement.
// Marking twice leaves a single entry.
func (d *Directory) MarkAnnouncementRead(announcementID, employeeID int) error {
	return d.db.Dashboard.Transact(func(doc *model.DashboardDocument) error {
		for i := range doc.Announcements {
			a := &doc.Announcements[i]
			if a.ID != announcementID {
				continue
			}
			if !slices.Contains(a.ReadBy, employeeID) {
				a.ReadBy = append(a.ReadBy, employeeID)
			}
			return nil
		}
		return fmt.Errorf("%w: announcement %d", core.ErrNotFound, announcementID)
	})
}

func (d *Directory) DeleteAnnouncement(announcementID int) error {
	return d.db.Dashboard.Transact(func(doc *model.DashboardDocument) error {
		kept := utils.Filter(doc.Announcements, func(a model.Announcement) bool {
			return a.ID != announcementID
		})
		if len(kept) == len(doc.Announcements) {
			return fmt.Errorf("%w: announcement %d", core.ErrNotFound, announcementID)
		}
		doc.Announcements = kept
		return nil
	})
}

func (d *Directory) Events() ([]model.Event, error) {
	doc, err := d.db.Dashboard.Load()
	if err != nil {
		return nil, err
	}
	return doc.Events, nil
}

func (d *Directory) AddEvent(title, date, description string) error {
	if title == "" || date == "" {
		return fmt.Errorf("%w: title and date are required", core.ErrInvalidInput)
	}
	if _, err := utils.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	return d.db.Dashboard.Transact(func(doc *model.DashboardDocument) error {
		doc.Events = append(doc.Events, model.Event{
			Title:       title,
			Date:        date,
			Description: description,
		})
		return nil
	})
}
