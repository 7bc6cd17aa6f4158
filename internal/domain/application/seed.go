package application

// sampleApplications — демонстрационные заявки для нового пользователя.
// ID, владельца и createdAt проставляет сервис при посеве.
var sampleApplications = []Application{
	{
		Company:  "Codex Labs",
		Role:     "Frontend Engineer",
		Link:     "https://jobs.codex.dev/frontend-engineer",
		Date:     "2025-02-18",
		Status:   "interview",
		Location: "Remote - Europe",
		Notes:    "Portfolio review scheduled. Brush up on accessibility stories.",
	},
	{
		Company:  "Atlas Biotech",
		Role:     "Product Designer",
		Link:     "https://careers.atlas.bio/design",
		Date:     "2025-02-05",
		Status:   "applied",
		Location: "Boston, MA",
		Notes:    "Waiting for response. Referred by Olivia.",
	},
	{
		Company:  "Northwind Studios",
		Role:     "Gameplay Engineer",
		Link:     "",
		Date:     "2025-01-12",
		Status:   "offer",
		Location: "Los Angeles, CA",
		Notes:    "Offer in hand. Need to decide by March 1st.",
	},
}
