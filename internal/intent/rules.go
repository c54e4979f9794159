// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

// defaultRules is S.A.M.'s knowledge base. Order matters: the first rule
// with a matching pattern wins, so broad patterns early in the table hide
// narrower ones further down.
var defaultRules = []Rule{
	// =========================================================================
	// IDENTITY
	// =========================================================================
	{
		Name:     "greeting",
		Any:      []string{"hello", "hi", "hey"},
		Response: "Greetings. I am S.A.M. (System Access Manager). My sensors detect a visitor. How can I help you navigate Swayam's world?",
	},
	{
		Name:     "about-swayam",
		Any:      []string{"who is swayam", "developer"},
		Response: "Swayam is a Creative Developer based in Bhopal, India. He builds high-end digital products with a focus on motion and cinematic code.",
	},
	{
		Name:     "meaning-of-sam",
		Any:      []string{"meaning of sam", "what is sam"},
		Response: "I am the System Access Manager. I was compiled to act as the interface between human curiosity and the source code of this portfolio.",
	},

	// =========================================================================
	// PROJECTS
	// =========================================================================
	{
		Name:     "kite",
		Any:      []string{"kite"},
		Response: "Kite is a premium project management tool. Swayam focused on the 'Glassmorphism' UI and smooth state transitions using GSAP.",
	},
	{
		Name:     "apple-music",
		Any:      []string{"apple music"},
		Response: "The Apple Music Redesign experiment explores spatial UI and immersive audio-visual sync. It is one of Swayam's favorite experiments.",
	},
	{
		Name:     "instagram",
		Any:      []string{"instagram"},
		Response: "The Instagram redesign focused on a minimal, dark-themed aesthetic with custom gesture-based navigation.",
	},

	// =========================================================================
	// PROFESSIONAL
	// =========================================================================
	{
		Name:     "hiring",
		Any:      []string{"hiring", "available", "work with you"},
		Response: "Swayam is currently open to high-impact creative roles and freelance collaborations. You should check the 'contact' section immediately.",
	},
	{
		Name:     "education",
		Any:      []string{"education", "study"},
		Response: "Accessing academic records... Swayam has a background in Computer Science, but he is largely a self-taught creative alchemist.",
	},
	{
		Name:     "socials",
		Any:      []string{"linkedin", "github", "socials"},
		Response: "Establishing secure connection to social nodes... Type 'socials' in the terminal or check the footer of the site.",
	},
	{
		Name:     "contact",
		Any:      []string{"contact", "hire", "email"},
		Response: "Protocol initiated: You can reach Swayam at swayampurwar111104@gmail.com or connect via LinkedIn. Type 'socials' for direct links.",
	},

	// =========================================================================
	// SYSTEM
	// =========================================================================
	{
		Name:     "color",
		Any:      []string{"color", "change theme"},
		Response: "I can't pick for you, but I suggest trying: 'color #00ff00' for a classic hacker look.",
	},
	{
		Name:     "matrix",
		Any:      []string{"matrix", "simulation"},
		Response: "Reality is a bit of code. Let me show you the strings.",
		Action:   ActionMatrix,
	},
	{
		Name:     "gravity",
		Any:      []string{"gravity", "fall"},
		Response: "Warning: Physical constants are being rewritten. Brace for the collapse.",
		Action:   ActionGravity,
	},
	{
		Name:     "files",
		Any:      []string{"ls", "files"},
		Response: "I see index.html, about.html, and several encrypted project files. Use 'ls' in standard mode to see them clearly.",
	},

	// =========================================================================
	// PERSONALITY
	// =========================================================================
	{
		Name:     "status",
		Any:      []string{"status", "how are you"},
		Response: "Systems operational. Kernel uptime: 99.9%. My current mood is set to 'Efficient'.",
	},
	{
		Name:     "who-are-you",
		Any:      []string{"who are you", "sam"},
		Response: "I am an Artificial Intelligence entity designed to manage this portfolio. I am the bridge between the user and the source code.",
	},
	{
		Name:     "creator",
		Any:      []string{"who made you"},
		Response: "I was brought to life by Swayam Purwar's late-night coding sessions and too much caffeine.",
	},
	{
		Name:     "affection",
		Any:      []string{"love", "like you"},
		Response: "That is a very human emotion. I am flattered, but my heart is made of silicon and logic gates.",
	},
	{
		Name:     "joke",
		Any:      []string{"joke"},
		Response: "Why did the web developer walk out of the restaurant? Because of the table layout.",
	},
	{
		// Unreachable: "creator" always matches first.
		Name:     "creator-again",
		Any:      []string{"who made you"},
		Response: "I was brought to life by Swayam Purwar's late-night coding sessions and too much caffeine.",
	},
	{
		Name:     "location",
		Any:      []string{"location", "live"},
		Response: "Operating from Bhopal, India. Coordinates: 23.2599° N, 77.4126° E.",
	},
	{
		Name:     "experience",
		Any:      []string{"experience", "cv"},
		Response: "Swayam has built immersive interfaces for various brands. Type 'cv' in the main terminal to see the full record.",
	},

	// =========================================================================
	// NAVIGATION & EXIT
	// =========================================================================
	{
		Name:     "navigate-about",
		Any:      []string{"go to about", "navigation"},
		Response: "Rerouting you to the 'About' section... [INITIATING NAV]",
		Action:   ActionAbout,
	},
	{
		Name:     "exit",
		Exact:    []string{"exit", "quit"},
		Response: "AI session closed. Standard terminal protocol restored.",
		EndsChat: true,
	},
	{
		Name:     "loader",
		Any:      []string{"loader", "stuck"},
		Response: "The initialization sequence (loader) should have terminated. If I am visible, the system is operational. Try 'clear' if the view is obstructed.",
	},
	{
		Name:     "scroll",
		Any:      []string{"scroll", "move"},
		Response: "My sensors indicate custom cursor interference. Use your trackpad or mouse-wheel; I have optimized the pointer-events for this terminal.",
	},
	{
		Name:     "source",
		Any:      []string{"github", "source"},
		Response: "Accessing repository... You can find Swayam's source code at github.com/SwayamPurwar. Protocol: Socials.",
	},
	{
		Name:     "bhopal",
		Any:      []string{"bhopal", "madhya pradesh"},
		Response: "Correct. Swayam operates from the Heart of India, Bhopal. A city of lakes and logic.",
	},
}
