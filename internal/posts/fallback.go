package posts

import (
	"time"
)

// fallback posts, served when the WordPress API stays unreachable
// after all retries; the site is never left without content
var fallbackPosts = []BlogPost{
	{
		ID:    1,
		Title: "Welcome to my corner of the internet",
		Slug:  "welcome",
		Excerpt: "A short introduction to this site, what I do, " +
			"and what kind of posts to expect here.",
		Content: "<p>Hi, I am Nikola. I build backend systems for a living and " +
			"write here about the things I run into along the way.</p>" +
			"<p>The blog is temporarily serving cached content, so only a few " +
			"posts are visible right now. Check back in a bit.</p>",
		Author:    "Nikola Milenkovic",
		CreatedAt: time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC),
		Tags:      []string{"Meta"},
		Featured:  true,
		Published: true,
	},
	{
		ID:    2,
		Title: "Services I can help you with",
		Slug:  "services",
		Excerpt: "Backend development, consulting and code reviews, " +
			"with a focus on Go and distributed systems.",
		Content: "<p>I take on a limited number of consulting engagements: " +
			"backend architecture, Go development, and production readiness " +
			"reviews.</p><p>Reach out through the contact form on the site.</p>",
		Author:    "Nikola Milenkovic",
		CreatedAt: time.Date(2023, 2, 1, 12, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 6, 15, 8, 0, 0, 0, time.UTC),
		Tags:      []string{"Meta", "Consulting"},
		Featured:  false,
		Published: true,
	},
	{
		ID:    3,
		Title: "Why this site has no comment section",
		Slug:  "no-comments",
		Excerpt: "A few words on keeping a personal site simple, " +
			"fast and free of moderation work.",
		Content: "<p>Every comment section I have ever run turned into a spam " +
			"moderation chore. If you want to discuss a post, email me or ping " +
			"me on the usual networks.</p>",
		Author:    "Nikola Milenkovic",
		CreatedAt: time.Date(2023, 3, 20, 17, 45, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 3, 20, 17, 45, 0, 0, time.UTC),
		Tags:      []string{"Meta", "Writing"},
		Featured:  false,
		Published: true,
	},
}

// FallbackPosts returns a copy of the static fallback posts,
// newest first, same ordering as the transformed upstream posts
func FallbackPosts() []BlogPost {
	postsCopy := make([]BlogPost, len(fallbackPosts))
	copy(postsCopy, fallbackPosts)
	for i, j := 0, len(postsCopy)-1; i < j; i, j = i+1, j-1 {
		postsCopy[i], postsCopy[j] = postsCopy[j], postsCopy[i]
	}
	return postsCopy
}
