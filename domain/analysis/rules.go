package analysis

// Icon tags are symbolic markers resolved to visual assets at the UI
// boundary. The engine never depends on a rendering library.
const (
	IconBrain     = "brain"
	IconMoon      = "moon"
	IconVideo     = "video"
	IconHeart     = "heart"
	IconLightbulb = "lightbulb"
	IconFileText  = "file-text"
	IconBookOpen  = "book-open"
	IconDumbbell  = "dumbbell"
	IconClock     = "clock"
	IconZap       = "zap"
	IconBriefcase = "briefcase"
	IconPalette   = "palette"
	IconCode      = "code"
	IconGlobe     = "globe"
)

// Result is one hierarchical classification produced for a piece of text.
type Result struct {
	ID      string   `json:"id"`
	Path    []string `json:"path"`
	Summary string   `json:"summary"`
	Icon    string   `json:"icon"`
	Todos   []string `json:"todos"`
}

// ruleBranch is one arm of a group's if/elif/else chain. A branch with no
// keywords is the chain's else arm and always fires when reached.
type ruleBranch struct {
	keywords []string
	result   Result
}

// ruleGroup fires at most one branch. A group with a gate is skipped entirely
// unless a gate keyword matches.
type ruleGroup struct {
	gate     []string
	branches []ruleBranch
}

// domainRule is a top-level classification domain. The guard result fires
// when the domain was triggered but none of its groups produced a result
// carrying the guard prefix.
type domainRule struct {
	name        string
	triggers    []string
	groups      []ruleGroup
	guardPrefix string
	guard       Result
}

// domainRules is evaluated in declaration order. Every id, path, summary and
// todo list is fixed per branch; nothing here is generated at runtime.
var domainRules = []domainRule{
	{
		name:     "Health",
		triggers: []string{"health", "exercise", "fitness", "workout", "gym", "run", "weight"},
		groups: []ruleGroup{
			{
				gate: []string{"sleep", "tired", "insomnia", "rest", "bed", "night"},
				branches: []ruleBranch{
					{
						keywords: []string{"schedule", "routine", "cycle", "pattern"},
						result: Result{
							ID:      "health-sleep-routine",
							Path:    []string{"Health", "Sleep", "Routine", "Optimization"},
							Summary: "Your notes discuss sleep routine optimization for better health.",
							Icon:    IconMoon,
							Todos: []string{
								"Create a consistent sleep schedule",
								"Develop a bedtime routine",
								"Track sleep quality for a week",
							},
						},
					},
					{
						keywords: []string{"problem", "issue", "trouble", "can't sleep"},
						result: Result{
							ID:      "health-sleep-disorders",
							Path:    []string{"Health", "Sleep", "Disorders", "Management"},
							Summary: "Your notes mention sleep problems and potential management approaches.",
							Icon:    IconMoon,
							Todos: []string{
								"Research sleep disorder symptoms",
								"Consider consulting a sleep specialist",
								"Try relaxation techniques before bed",
							},
						},
					},
					{
						result: Result{
							ID:      "health-sleep-general",
							Path:    []string{"Health", "Sleep", "Quality", "Improvement"},
							Summary: "Your notes focus on sleep quality and its importance for overall health.",
							Icon:    IconMoon,
							Todos: []string{
								"Limit screen time before bed",
								"Create an optimal sleep environment",
								"Consider sleep-supporting supplements",
							},
						},
					},
				},
			},
			{
				gate: []string{"workout", "exercise", "gym", "training", "lift"},
				branches: []ruleBranch{
					{
						keywords: []string{"start", "begin", "new", "routine", "plan"},
						result: Result{
							ID:      "health-exercise-starting",
							Path:    []string{"Health", "Exercise", "Beginners", "Program Development"},
							Summary: "Your notes discuss starting a new exercise program or routine.",
							Icon:    IconDumbbell,
							Todos: []string{
								"Research beginner workout routines",
								"Set realistic fitness goals",
								"Create a weekly exercise schedule",
							},
						},
					},
					{
						keywords: []string{"motivation", "lazy", "procrastinate", "putting off", "avoid"},
						result: Result{
							ID:      "health-exercise-motivation",
							Path:    []string{"Health", "Exercise", "Motivation", "Consistency"},
							Summary: "Your notes mention challenges with exercise motivation and consistency.",
							Icon:    IconDumbbell,
							Todos: []string{
								"Find an accountability partner",
								"Set small, achievable fitness goals",
								"Create rewards for exercise consistency",
							},
						},
					},
					{
						result: Result{
							ID:      "health-exercise-improvement",
							Path:    []string{"Health", "Exercise", "Performance", "Optimization"},
							Summary: "Your notes focus on improving exercise performance and results.",
							Icon:    IconDumbbell,
							Todos: []string{
								"Research advanced training techniques",
								"Consider hiring a personal trainer",
								"Track workout progress systematically",
							},
						},
					},
				},
			},
			{
				gate: []string{"diet", "nutrition", "eat", "food", "meal"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "health-nutrition",
							Path:    []string{"Health", "Nutrition", "Diet", "Planning"},
							Summary: "Your notes discuss nutrition and dietary considerations.",
							Icon:    IconHeart,
							Todos: []string{
								"Plan balanced weekly meals",
								"Research nutritional requirements",
								"Consider consulting a nutritionist",
							},
						},
					},
				},
			},
		},
		guardPrefix: "health-",
		guard: Result{
			ID:      "health-general-wellness",
			Path:    []string{"Health", "General Wellness", "Lifestyle", "Improvement"},
			Summary: "Your notes focus on overall health and wellness improvement.",
			Icon:    IconHeart,
			Todos: []string{
				"Schedule a health check-up",
				"Develop a holistic wellness plan",
				"Research preventative health measures",
			},
		},
	},
	{
		name: "Productivity",
		triggers: []string{
			"productivity", "focus", "work", "task", "project", "deadline", "goal", "time management",
		},
		groups: []ruleGroup{
			{
				branches: []ruleBranch{
					{
						keywords: []string{"procrastinate", "delay", "putting off", "avoid", "later"},
						result: Result{
							ID:      "productivity-procrastination",
							Path:    []string{"Personal Development", "Productivity", "Procrastination", "Overcoming"},
							Summary: "Your notes discuss challenges with procrastination and strategies to overcome it.",
							Icon:    IconClock,
							Todos: []string{
								"Try the Pomodoro technique",
								"Break large tasks into smaller steps",
								"Identify and address procrastination triggers",
							},
						},
					},
					{
						keywords: []string{"focus", "concentrate", "distraction", "attention"},
						result: Result{
							ID:      "productivity-focus",
							Path:    []string{"Personal Development", "Productivity", "Focus", "Enhancement"},
							Summary: "Your notes mention challenges with maintaining focus and concentration.",
							Icon:    IconZap,
							Todos: []string{
								"Create a distraction-free workspace",
								"Try focus-enhancing techniques",
								"Consider digital detox periods",
							},
						},
					},
					{
						keywords: []string{"organize", "system", "method", "process", "workflow"},
						result: Result{
							ID:      "productivity-systems",
							Path:    []string{"Personal Development", "Productivity", "Systems", "Implementation"},
							Summary: "Your notes focus on developing productivity systems and workflows.",
							Icon:    IconBrain,
							Todos: []string{
								"Research productivity methodologies",
								"Test different organizational systems",
								"Develop personalized workflow processes",
							},
						},
					},
					{
						result: Result{
							ID:      "productivity-general",
							Path:    []string{"Personal Development", "Productivity", "Efficiency", "Optimization"},
							Summary: "Your notes discuss general productivity improvement strategies.",
							Icon:    IconBrain,
							Todos: []string{
								"Audit current productivity levels",
								"Set specific productivity goals",
								"Implement regular productivity reviews",
							},
						},
					},
				},
			},
		},
	},
	{
		name: "Creative",
		triggers: []string{
			"creative", "create", "art", "design", "write", "music", "video", "edit", "film", "photo",
		},
		groups: []ruleGroup{
			{
				gate: []string{"video", "film", "edit", "footage", "movie"},
				branches: []ruleBranch{
					{
						keywords: []string{"start", "begin", "learn", "new", "how to"},
						result: Result{
							ID:      "creative-video-beginner",
							Path:    []string{"Creative Skills", "Digital Media", "Video Editing", "Beginners"},
							Summary: "Your notes discuss getting started with video editing as a beginner.",
							Icon:    IconVideo,
							Todos: []string{
								"Research beginner-friendly video editing software",
								"Take an introductory video editing course",
								"Practice with simple editing projects",
							},
						},
					},
					{
						keywords: []string{"technique", "skill", "effect", "transition", "color"},
						result: Result{
							ID:      "creative-video-techniques",
							Path:    []string{"Creative Skills", "Digital Media", "Video Editing", "Advanced Techniques"},
							Summary: "Your notes focus on specific video editing techniques and skills.",
							Icon:    IconVideo,
							Todos: []string{
								"Study advanced editing transitions",
								"Learn color grading techniques",
								"Practice special effects implementation",
							},
						},
					},
					{
						keywords: []string{"workflow", "process", "efficient", "organize"},
						result: Result{
							ID:      "creative-video-workflow",
							Path:    []string{"Creative Skills", "Digital Media", "Video Editing", "Workflow Optimization"},
							Summary: "Your notes discuss optimizing video editing workflow and processes.",
							Icon:    IconVideo,
							Todos: []string{
								"Develop a standardized editing workflow",
								"Create project templates and presets",
								"Research file management best practices",
							},
						},
					},
					{
						result: Result{
							ID:      "creative-video-general",
							Path:    []string{"Creative Skills", "Digital Media", "Video Editing", "General"},
							Summary: "Your notes contain general thoughts about video editing.",
							Icon:    IconVideo,
							Todos: []string{
								"Define specific video editing goals",
								"Research current video editing trends",
								"Explore different video editing styles",
							},
						},
					},
				},
			},
			{
				gate: []string{"write", "writing", "blog", "book", "story", "content"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "creative-writing",
							Path:    []string{"Creative Skills", "Writing", "Content Creation", "Development"},
							Summary: "Your notes discuss writing and content creation.",
							Icon:    IconFileText,
							Todos: []string{
								"Establish a regular writing routine",
								"Research writing techniques",
								"Create an editorial calendar",
							},
						},
					},
				},
			},
			{
				gate: []string{"design", "graphic", "visual", "ui", "ux", "interface"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "creative-design",
							Path:    []string{"Creative Skills", "Visual Arts", "Design", "Principles"},
							Summary: "Your notes focus on design and visual arts.",
							Icon:    IconPalette,
							Todos: []string{
								"Study fundamental design principles",
								"Practice with design software",
								"Create a design portfolio",
							},
						},
					},
				},
			},
		},
		guardPrefix: "creative-",
		guard: Result{
			ID:      "creative-general",
			Path:    []string{"Creative Skills", "Artistic Expression", "Creativity", "Development"},
			Summary: "Your notes discuss general creative development and artistic expression.",
			Icon:    IconLightbulb,
			Todos: []string{
				"Explore different creative mediums",
				"Establish a creative practice routine",
				"Find inspiration sources",
			},
		},
	},
	{
		name: "Learning",
		triggers: []string{
			"learn", "study", "course", "book", "read", "knowledge", "skill", "education",
		},
		groups: []ruleGroup{
			{
				gate: []string{
					"language", "speak", "foreign", "english", "spanish",
					"korean", "japanese", "chinese", "french", "german",
				},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "learning-languages",
							Path:    []string{"Education", "Language Learning", "Acquisition", "Methods"},
							Summary: "Your notes discuss language learning approaches and methods.",
							Icon:    IconGlobe,
							Todos: []string{
								"Establish daily language practice",
								"Find language exchange partners",
								"Use spaced repetition for vocabulary",
							},
						},
					},
				},
			},
			{
				gate: []string{"programming", "code", "software", "development", "app", "web"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "learning-programming",
							Path:    []string{"Education", "Technology", "Programming", "Skill Development"},
							Summary: "Your notes focus on learning programming and software development.",
							Icon:    IconCode,
							Todos: []string{
								"Complete coding tutorials",
								"Build practice projects",
								"Join programming communities",
							},
						},
					},
				},
			},
			{
				gate: []string{"academic", "school", "university", "college", "degree", "class"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "learning-academic",
							Path:    []string{"Education", "Academic", "Formal Learning", "Strategy"},
							Summary: "Your notes discuss formal academic learning and education.",
							Icon:    IconBookOpen,
							Todos: []string{
								"Create a study schedule",
								"Research effective note-taking methods",
								"Form or join study groups",
							},
						},
					},
				},
			},
		},
		guardPrefix: "learning-",
		guard: Result{
			ID:      "learning-general",
			Path:    []string{"Education", "Lifelong Learning", "Knowledge", "Acquisition"},
			Summary: "Your notes focus on general learning and knowledge acquisition.",
			Icon:    IconBookOpen,
			Todos: []string{
				"Identify key learning objectives",
				"Research learning methodologies",
				"Create a personal learning plan",
			},
		},
	},
	{
		name: "Business",
		triggers: []string{
			"business", "career", "job", "work", "professional", "startup", "company", "entrepreneur",
		},
		groups: []ruleGroup{
			{
				gate: []string{"startup", "business", "company", "launch", "entrepreneur"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "business-startup",
							Path:    []string{"Business", "Entrepreneurship", "Startup", "Development"},
							Summary: "Your notes discuss startup development and entrepreneurship.",
							Icon:    IconBriefcase,
							Todos: []string{
								"Develop a business plan",
								"Research market opportunities",
								"Network with other entrepreneurs",
							},
						},
					},
				},
			},
			{
				gate: []string{"career", "job", "profession", "work", "employment"},
				branches: []ruleBranch{
					{
						result: Result{
							ID:      "business-career",
							Path:    []string{"Professional", "Career Development", "Growth", "Strategy"},
							Summary: "Your notes focus on career development and professional growth.",
							Icon:    IconBriefcase,
							Todos: []string{
								"Update resume and professional profiles",
								"Set specific career goals",
								"Research skill development opportunities",
							},
						},
					},
				},
			},
		},
		guardPrefix: "business-",
		guard: Result{
			ID:      "business-general",
			Path:    []string{"Business", "Professional Development", "Strategy", "Implementation"},
			Summary: "Your notes discuss general business and professional development topics.",
			Icon:    IconBriefcase,
			Todos: []string{
				"Identify key business objectives",
				"Research industry trends",
				"Develop professional skills",
			},
		},
	},
}

// reflectionResult is the last-resort classification when nothing matched
// and no fallback topic could be extracted.
var reflectionResult = Result{
	ID:      "thoughtful-reflection",
	Path:    []string{"Reflective Thinking", "Personal Insights", "Thought Development", "Analysis"},
	Summary: "Your notes contain thoughtful reflections and personal insights.",
	Icon:    IconBrain,
	Todos: []string{
		"Expand on these initial thoughts",
		"Consider journaling regularly",
		"Research topics of interest more deeply",
	},
}
