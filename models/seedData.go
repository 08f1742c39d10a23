package models

// SeedCatalog returns the starter catalog loaded by the admin seed
// endpoint on a fresh deployment. Slugs already present are left alone.
func SeedCatalog() []ProductInput {
	return []ProductInput{
		{
			Slug:        "simple-way-of-peace-life",
			Title:       "Simple Way of Peace Life",
			Author:      "Armor Ramsey",
			Price:       1200,
			Image:       "/images/product-item1.jpg",
			Description: "An inspiring guide that blends mindfulness, spirituality, and everyday routines to help you build a peaceful, purpose-driven life.",
			Highlights: []string{
				"Paperback edition",
				"Ships in 2-3 business days",
				"Exclusive Burki Books bookmark included",
			},
			Pages:      286,
			Publisher:  "Burki House Publishing",
			Categories: []string{AllGenreSentinel},
			IsFeatured: true,
		},
		{
			Slug:        "great-travel-at-desert",
			Title:       "Great Travel at Desert",
			Author:      "Sanchit Howdy",
			Price:       950,
			Image:       "/images/product-item2.jpg",
			Description: "A sweeping travel memoir capturing the resilience of explorers who crossed remote dunes and discovered timeless cultures.",
			Highlights: []string{
				"Author-signed sticker inside",
				"Complimentary gift wrap",
				"Eligible for free Karachi/Lahore delivery",
			},
			Pages:         324,
			Publisher:     "Nomad Press",
			Categories:    []string{AllGenreSentinel, "Fiction and Literature"},
			Subcategories: []string{"Contemporary Fiction"},
			IsFeatured:    true,
		},
		{
			Slug:        "the-lady-beauty-scarlett",
			Title:       "The Lady Beauty Scarlett",
			Author:      "Arthur Doyle",
			Price:       1500,
			Image:       "/images/product-item3.jpg",
			Description: "A dramatic tale of courage, grace, and intrigue set in Victorian Lahore, filled with twists readers adore.",
			Highlights: []string{
				"Hardcover gift edition",
				"Includes character art postcards",
				"Eligible for free nationwide shipping",
			},
			Pages:      412,
			Publisher:  "Scarlett Press",
			Categories: []string{AllGenreSentinel},
			IsFeatured: true,
		},
		{
			Slug:        "once-upon-a-time",
			Title:       "Once Upon a Time",
			Author:      "Klien Marry",
			Price:       800,
			Image:       "/images/product-item4.jpg",
			Description: "A delightful anthology of bedtime tales perfect for young dreamers and nostalgic adults alike.",
			Highlights: []string{
				"Illustrated pages",
				"Signed bookplate included",
				"Ships in eco packaging",
			},
			Pages:         208,
			Publisher:     "Storyline Media",
			Categories:    []string{AllGenreSentinel, "Fiction and Literature"},
			Subcategories: []string{"Contemporary Fiction"},
			IsFeatured:    true,
		},
		{
			Slug:        "birds-gonna-be-happy",
			Title:       "Birds Gonna Be Happy",
			Author:      "Timbur Hood",
			Price:       1350,
			Image:       "/images/single-image.jpg",
			Description: "An uplifting novel about seeking joy in small moments, set against the bustling streets of Lahore.",
			Highlights: []string{
				"Reader's guide included",
				"Perfect for book clubs",
				"Limited first-print cover",
			},
			Pages:        296,
			Publisher:    "Burki House Publishing",
			Categories:   []string{AllGenreSentinel},
			IsFeatured:   true,
			IsBestSeller: true,
		},
		{
			Slug:        "portrait-photography",
			Title:       "Portrait Photography",
			Author:      "Adam Silber",
			Price:       1200,
			Image:       "/images/tab-item1.jpg",
			Description: "A practical handbook packed with tips on lighting, composition, and storytelling for portrait shooters.",
			Highlights: []string{
				"Includes cheat sheets",
				"Bonus Lightroom presets",
				"Ships with protective sleeve",
			},
			Pages:         254,
			Publisher:     "LensCraft",
			Categories:    []string{AllGenreSentinel, "Self-Help & Motivation"},
			Subcategories: []string{"Personal Development"},
			IsFeatured:    true,
		},
		{
			Slug:        "tips-of-simple-lifestyle",
			Title:       "Tips of Simple Lifestyle",
			Author:      "Bratt Smith",
			Price:       1100,
			Image:       "/images/tab-item3.jpg",
			Description: "A mindful living guide filled with actionable advice for decluttering, budgeting, and intentional routines.",
			Highlights: []string{
				"Worksheets included",
				"Local print on recycled paper",
				"Eligible for bundle discount",
			},
			Pages:         318,
			Publisher:     "Minimal House",
			Categories:    []string{AllGenreSentinel, "Self-Help & Motivation"},
			Subcategories: []string{"Personal Development", "Productivity"},
			IsFeatured:    true,
		},
		{
			Slug:        "peaceful-enlightment",
			Title:       "Peaceful Enlightment",
			Author:      "Marmik Lama",
			Price:       1300,
			Image:       "/images/tab-item5.jpg",
			Description: "A reflective guide blending Eastern philosophies with modern mindfulness practices.",
			Highlights: []string{
				"Clothbound edition",
				"Meditation exercises inside",
				"Eligible for gift wrap",
			},
			Pages:         268,
			Publisher:     "Lotus Ink",
			Categories:    []string{AllGenreSentinel, "Philosophy & Critical Thinking"},
			Subcategories: []string{"Eastern Philosophy", "Ethics & Morality"},
		},
		{
			Slug:        "life-among-the-pirates",
			Title:       "Life Among the Pirates",
			Author:      "Armor Ramsey",
			Price:       1400,
			Image:       "/images/tab-item7.jpg",
			Description: "An adventurous dive into maritime history, myths, and the golden age of pirates.",
			Highlights: []string{
				"Foil-stamped cover",
				"Maps & timeline inside",
				"Ships in 2 days",
			},
			Pages:         352,
			Publisher:     "Harbor House",
			Categories:    []string{AllGenreSentinel, "Fiction and Literature"},
			Subcategories: []string{"Classic Literature"},
		},
	}
}
