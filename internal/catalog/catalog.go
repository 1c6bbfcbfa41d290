// Package catalog supplies the hand-curated audio posts. Buy Me a Coffee
// exposes no machine-readable feed, so new posts are added here by hand.
package catalog

import "github.com/PriKalra/priyata-universe/internal/content"

// SourceName labels items originating from the curated catalog.
const SourceName = "Buy Me a Coffee"

var posts = []content.Item{
	{
		Kind:        content.KindAudio,
		Title:       "Paper2Agent: Reimagining Research Papers",
		Excerpt:     "Exploring how research papers can be transformed into interactive and reliable AI agents.",
		Link:        "https://buymeacoffee.com/priyata/paper2agent-reimagining-research-papers-as-interactive-reliable-ai-agents",
		Source:      SourceName,
		Date:        "2025-10-06",
		Size:        "medium",
		AudioLength: "34:00",
		AudioURL:    "https://cdn.buymeacoffee.com/uploads/project_updates/2025/10/30d206c46073aac17f7c86b0e3c17b45.mp3",
		Image:       "https://cdn.buymeacoffee.com/uploads/project_updates/2025/10/30d206c46073aac17f7c86b0e3c17b45.jpg",
		Views:       54,
	},
	{
		Kind:        content.KindAudio,
		Title:       "LLMs for Data Extraction in Toxicology",
		Excerpt:     "Implications and lessons learned from using LLMs in toxicology data extraction.",
		Link:        "https://buymeacoffee.com/priyata/large-language-models-data-extraction-toxicology-implications-lessons-learned",
		Source:      SourceName,
		Date:        "2025-09-09",
		Size:        "medium",
		AudioLength: "18:54",
		AudioURL:    "https://cdn.buymeacoffee.com/uploads/project_updates/2025/09/203b4664c1490ef46d800870a959b3c5.mp3",
		Image:       "https://cdn.buymeacoffee.com/uploads/project_updates/2025/09/203b4664c1490ef46d800870a959b3c5.jpg",
		Views:       84,
	},
	{
		Kind:        content.KindAudio,
		Title:       "Machine Learning Automation of PKPD Modelling",
		Excerpt:     "Exploring the intersection of machine learning and pharmacokinetic-pharmacodynamic modeling.",
		Link:        "https://buymeacoffee.com/priyata/machine-learning-automation-pkpd-modelling",
		Source:      SourceName,
		Date:        "2025-08-07",
		Size:        "medium",
		AudioLength: "20:09",
		AudioURL:    "https://cdn.buymeacoffee.com/uploads/project_updates/2025/08/4a7ec3e8b391f35c0a4ded98a734b078.mp3",
		Image:       "https://cdn.buymeacoffee.com/uploads/project_updates/2025/08/4a7ec3e8b391f35c0a4ded98a734b078.jpg",
		Views:       148,
	},
}

// Items returns the curated catalog as a fresh copy; callers may mutate
// the result freely.
func Items() []content.Item {
	out := make([]content.Item, len(posts))
	copy(out, posts)
	return out
}
