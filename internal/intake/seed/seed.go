// Package seed provides the demo fixture data: three accounts and their
// admissions applications, used to bootstrap an empty installation.
package seed

import (
	"time"

	"github.com/saxionhub/intake/internal/intake/domain"
)

// Roles a demo account can hold.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

// User is one demo account with its applications. There are no credentials:
// authentication is out of scope and the accounts exist only to exercise the
// workflow.
type User struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Role         string               `json:"role"`
	Locale       string               `json:"locale"`
	Applications []domain.Application `json:"applications"`
}

// Status is never seeded: it derives from the steps below. The old Creative
// Media case carries a fully progressed history so the archival sweep and the
// staff surfaces have something to chew on from the first start.
var users = []User{
	{
		ID:     "u1",
		Name:   "Alex Jansen",
		Email:  "alex@saxion-demo.nl",
		Role:   RoleStudent,
		Locale: "nl",
		Applications: []domain.Application{
			{
				ID:        "app-nl-2023",
				Program:   "HBO-ICT",
				Cycle:     "2023/2024",
				CreatedAt: date("2023-05-20"),
			},
			{
				ID:        "app-old-2021",
				Program:   "Creative Media",
				Cycle:     "2021/2022",
				CreatedAt: date("2021-03-10"),
				Steps: domain.Steps{
					Assignment: domain.Assignment{
						Text:        "Portfolio link included.",
						SubmittedAt: "2021-03-15",
					},
					Documents: domain.Documents{
						Files: []domain.Document{{
							ID:         "d1",
							Label:      "Diploma.pdf",
							Filename:   "Diploma.pdf",
							Size:       120000,
							Mime:       "application/pdf",
							UploadedAt: "2021-03-12",
						}},
						Submitted:   true,
						SubmittedAt: "2021-03-15",
						Approved:    true,
						ApprovedAt:  "2021-03-18",
					},
					Appointment: domain.Appointment{
						Date: "2021-03-20",
						Time: "10:00",
						Type: domain.AppointmentTypeIntake,
						Done: true,
					},
					Result: domain.Result{
						Published:   true,
						Decision:    domain.DecisionAdmit,
						PublishedAt: "2021-04-10",
						Notes:       "Congrats!",
					},
				},
			},
		},
	},
	{
		ID:     "u2",
		Name:   "Chidinma Okoro",
		Email:  "chidinma@saxion-demo.ng",
		Role:   RoleStudent,
		Locale: "en",
		Applications: []domain.Application{
			{
				ID:              "app-int-2025",
				Program:         "Applied Computer Science (English)",
				Cycle:           "2025/2026",
				CreatedAt:       date("2025-06-01"),
				IsInternational: true,
			},
		},
	},
	{
		ID:     "u3",
		Name:   "Staff Demo",
		Email:  "staff@saxion-demo.edu",
		Role:   RoleStaff,
		Locale: "en",
	},
}

// Users returns deep copies of the demo accounts.
func Users() []User {
	out := make([]User, len(users))
	for i, user := range users {
		copied := user
		copied.Applications = make([]domain.Application, len(user.Applications))
		for j, app := range user.Applications {
			copied.Applications[j] = app.Clone()
		}
		out[i] = copied
	}
	return out
}

// Applications returns deep copies of every seeded application across all
// accounts, in stable order.
func Applications() []domain.Application {
	var out []domain.Application
	for _, user := range users {
		for _, app := range user.Applications {
			out = append(out, app.Clone())
		}
	}
	return out
}

func date(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}
