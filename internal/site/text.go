package site

// Content is everything the page displays. Defaults() carries the shipped
// copy; LoadContent overlays a YAML file on top of it.
type Content struct {
	Title        string        `yaml:"title"`
	Logo         string        `yaml:"logo"`
	Hero         Hero          `yaml:"hero"`
	About        About         `yaml:"about"`
	Portfolio    []Project     `yaml:"portfolio"`
	Brands       []string      `yaml:"brands"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Contact      ContactInfo   `yaml:"contact"`
	Nav          []NavLink     `yaml:"nav"`
	Footer       string        `yaml:"footer"`
}

type Hero struct {
	Tagline string `yaml:"tagline"`
	CTAText string `yaml:"cta_text"`
	CTAHref string `yaml:"cta_href"`
}

type About struct {
	Photo       string  `yaml:"photo"`
	PhotoAlt    string  `yaml:"photo_alt"`
	Bio         string  `yaml:"bio"` // markdown
	HireHeading string  `yaml:"hire_heading"`
	Points      []Point `yaml:"points"`
}

type Point struct {
	Icon   string `yaml:"icon"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// Project is one portfolio card. Tone picks the price badge palette:
// primary, secondary or tertiary.
type Project struct {
	VideoSrc    string `yaml:"video_src"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Tone        string `yaml:"tone"`
}

type Testimonial struct {
	Quote  string `yaml:"quote"`
	Avatar string `yaml:"avatar"`
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
}

type ContactInfo struct {
	Intro        string   `yaml:"intro"`
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone"`
	PhoneDisplay string   `yaml:"phone_display"`
	Socials      []Social `yaml:"socials"`
}

type Social struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// NavLink points at a page section by id.
type NavLink struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

func (n NavLink) Href() string { return "#" + n.Section }

// Defaults returns the shipped page copy.
func Defaults() Content {
	return Content{
		Title: "CRTV ARYAN | Video Editing Portfolio",
		Logo:  "/static/img/logo.png",
		Hero: Hero{
			Tagline: "Transforming raw footage into compelling stories that captivate and engage.",
			CTAText: "View My Work",
			CTAHref: "#portfolio",
		},
		About: About{
			Photo:    "/static/img/profile-photo.jpg",
			PhotoAlt: "Aryan, Video Editor",
			Bio: `Hey, I'm Aryan, a passionate video editor blending creativity with storytelling.
From cinematic match cuts and morph transitions to dreamcore aesthetics and VFX-heavy edits,
I craft visuals that leave a lasting impact. Whether it's a reel, short film, or full-blown
commercial, I bring ideas to life with precision, emotion, and a love for pushing visual boundaries.`,
			HireHeading: "Why You Should Hire Me:",
			Points: []Point{
				{Icon: "rocket_launch", Title: "Super fast delivery", Detail: "Meeting your deadlines without compromising quality."},
				{Icon: "sentiment_very_satisfied", Title: "100% client satisfaction", Detail: "Your happiness is my top priority."},
				{Icon: "sell", Title: "Affordable pricing", Detail: "Professional editing that fits your budget."},
				{Icon: "rate_review", Title: "Open to feedback and revisions", Detail: "Collaborative process to achieve the perfect result."},
				{Icon: "movie", Title: "Expert in motion graphics, VFX, reels", Detail: "Bringing dynamic and engaging visuals to your projects."},
			},
		},
		Portfolio: []Project{
			{
				VideoSrc:    "https://www.youtube.com/embed/oVtkuXaXRgQ",
				Title:       "Course & Educational Videos",
				Description: "Clean, structured, and engaging edits for online courses and training content.",
				Price:       "Starting at ₹700/min",
				Tone:        "primary",
			},
			{
				VideoSrc:    "https://www.youtube.com/embed/KHfhsyyjuOc",
				Title:       "3D Animation (Blender)",
				Description: "High-quality 3D visuals and animations to bring concepts and stories to life.",
				Price:       "Starting at ₹5,000/min",
				Tone:        "secondary",
			},
			{
				VideoSrc:    "https://www.youtube.com/embed/a0FQMUEgDPs",
				Title:       "VFX Editing",
				Description: "Seamless effects, compositing, and creative visuals for cinematic impact.",
				Price:       "Starting at ₹4,000/min",
				Tone:        "tertiary",
			},
			{
				VideoSrc:    "https://www.youtube.com/embed/60HHK5iqkJk",
				Title:       "Shorts & Reels Editing",
				Description: "Trendy, fast-paced edits optimized for Instagram, YouTube, and TikTok.",
				Price:       "Starting at ₹2000/90sec",
				Tone:        "primary",
			},
			{
				VideoSrc:    "https://www.youtube.com/embed/CrKoWJ3mDHI",
				Title:       "Event Promotional Videos",
				Description: "Highlight reels, promos, and aftermovies that capture the energy of your event.",
				Price:       "Starting at ₹2,000/min",
				Tone:        "secondary",
			},
		},
		Brands: []string{
			"/static/brands/Prepfully.png",
			"/static/brands/digi.png",
			"/static/brands/ana.svg",
			"/static/brands/teztech.png",
			"/static/brands/rego.png",
			"/static/brands/Ecell.png",
		},
		Testimonials: []Testimonial{
			{
				Quote:  "He made our teaching course videos with great professionalism, was super patient with revisions, really cared about the content quality, and always delivered on time. Honestly, one of the best experiences working with someone.",
				Avatar: "/static/avatars/prepfully.jpg",
				Name:   "Shubham Jadav",
				Title:  "Product Manager, Prepfully",
			},
			{
				Quote:  "Incredible work on our promotional video. The motion graphics were stunning and perfectly captured our brand's energy. Highly recommended!",
				Avatar: "/static/avatars/digimain.jpg",
				Name:   "Ankit Dhiman",
				Title:  "Founder, Digi Maintainer",
			},
			{
				Quote:  "He worked on our videos with full professionalism. Even when the video wasn't ready, he always told the real reason and gave a clear new date. The best part I liked was his honesty and commitment really great to work with.",
				Avatar: "/static/avatars/anatech.jpg",
				Name:   "Shubhas Sahu",
				Title:  "Founder, AnaTech",
			},
		},
		Contact: ContactInfo{
			Intro:        "Have a project in mind? I'd love to hear from you. Let's discuss how I can help bring your vision to life.",
			Email:        "rajaryangupta1445@gmail.com",
			Phone:        "+917909001445",
			PhoneDisplay: "+91 7909001445",
			Socials: []Social{
				{Label: "Instagram", Href: "https://www.instagram.com/raj_aryan_03"},
				{Label: "LinkedIn", Href: "https://www.linkedin.com/in/crtvaryan65"},
			},
		},
		Nav: []NavLink{
			{Label: "About Me", Section: "about"},
			{Label: "Portfolio", Section: "portfolio"},
			{Label: "Brands", Section: "brands"},
			{Label: "Testimonials", Section: "testimonials"},
			{Label: "Contact", Section: "contact"},
		},
		Footer: "My Video Editing Portfolio. All Rights Reserved.",
	}
}
