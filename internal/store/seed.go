package store

import "github.com/bestpacific/induction/internal/models"

// SeedUsers returns the fixed default accounts used when no persisted users
// blob exists. One of them must be an admin so the console stays reachable
// on a fresh install.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:         "1",
			Name:       "System Admin",
			Email:      "admin@bestpacific.com",
			Password:   "admin",
			Role:       models.RoleAdmin,
			Department: "Executive",
			JoinDate:   "2020-01-01",
			Progress:   100,
		},
		{
			ID:         "2",
			Name:       "New Employee",
			Email:      "user@bestpacific.com",
			Password:   "user123",
			Role:       models.RoleUser,
			Department: "Production",
			JoinDate:   "2024-05-10",
			Progress:   15,
		},
	}
}

// SeedSections returns the fixed default induction content used when no
// persisted sections blob exists.
func SeedSections() []models.InductionSection {
	return []models.InductionSection{
		{
			ID:          "s1",
			Title:       "Welcome to Best Pacific",
			Content:     "Best Pacific Textiles Lanka is a leader in high-end apparel materials. We are committed to innovation and excellence in the textile industry.",
			Category:    models.CategoryCompany,
			LastUpdated: now(),
			Order:       1,
			Attachments: []models.MediaAttachment{
				{ID: "m1", Type: models.MediaTypeVideo, Name: "Corporate Intro", URL: "https://sample-videos.com/video123/mp4/720/big_buck_bunny_720p_1mb.mp4"},
			},
		},
		{
			ID:          "s2",
			Title:       "Our Vision & Values",
			Content:     "Our vision is to be the global benchmark in textile manufacturing. Our values: Integrity, Innovation, Customer Focus, and Sustainability.",
			Category:    models.CategoryCompany,
			LastUpdated: now(),
			Order:       2,
			Attachments: []models.MediaAttachment{
				{ID: "m2", Type: models.MediaTypePresentation, Name: "Vision 2025 PPT", URL: "#"},
			},
		},
		{
			ID:          "s3",
			Title:       "Health and Safety Protocols",
			Content:     "Safety is our top priority. All employees must wear PPE in designated zones.",
			Category:    models.CategorySafety,
			LastUpdated: now(),
			Order:       3,
			Attachments: []models.MediaAttachment{
				{ID: "m3", Type: models.MediaTypeDocument, Name: "Safety Manual PDF", URL: "#"},
			},
		},
	}
}
