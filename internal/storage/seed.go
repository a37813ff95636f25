package storage

import "github.com/valter-silva-au/foresight/pkg/models"

// Built-in seed catalog and scenarios. These back the tool when no data
// directory has been initialized; `foresight repo export` writes them out as
// editable YAML.

func rangeOf(min, max float64) *models.ValueRange {
	return &models.ValueRange{Min: min, Max: max}
}

func item(id, name, description string, tags []string, aliases ...string) models.RepositoryItem {
	return models.RepositoryItem{
		ID:          id,
		Name:        name,
		Description: description,
		Tags:        tags,
		Aliases:     aliases,
	}
}

// SeedParameters returns the built-in parameter definitions.
func SeedParameters() []models.ParameterDefinition {
	return []models.ParameterDefinition{
		{
			RepositoryItem: item("ai-capability-multiplier", "AI Capability Multiplier",
				"How much faster AI systems can perform cognitive tasks compared to human experts",
				[]string{"capability", "performance", "speed"},
				"AI Speed vs Human Expert", "AI R&D Progress Multiplier"),
			Unit: "x faster", Color: "#8b5cf6", Category: models.ParamCapability,
			Range: rangeOf(1, 1000), UsesConfidence: true,
		},
		{
			RepositoryItem: item("training-compute-scale", "Training Compute Scale",
				"Scale of compute used to train the largest AI systems",
				[]string{"capability", "compute", "training"}),
			Unit: "FLOP", Color: "#3b82f6", Category: models.ParamCapability,
			Range: rangeOf(1e20, 1e30), UsesConfidence: true,
		},
		{
			RepositoryItem: item("ai-agent-copies", "Parallel AI Agent Copies",
				"Number of AI agent instances running in parallel",
				[]string{"capability", "agents", "scale"},
				"Agent Instances"),
			Unit: "copies", Color: "#06b6d4", Category: models.ParamCapability,
			Range: rangeOf(1, 1e9), UsesConfidence: true,
		},
		{
			RepositoryItem: item("ai-operational-independence", "AI Operational Independence",
				"Degree to which AI systems can operate without human intervention",
				[]string{"capability", "autonomy", "independence"}),
			Unit: "% autonomous", Color: "#8b5cf6", Category: models.ParamCapability,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("alignment-status", "Alignment Status",
				"Assessment of how well AI systems are aligned with human values and intentions",
				[]string{"safety", "alignment", "risk"},
				"Perceived vs Actual Alignment", "AI Alignment Level"),
			Unit: "% aligned", Color: "#10b981", Category: models.ParamSafety,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("alignment-verification-confidence", "Alignment Verification Confidence",
				"Confidence in our ability to verify AI alignment",
				[]string{"safety", "alignment", "verification"}),
			Unit: "% confident", Color: "#059669", Category: models.ParamSafety,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("public-awareness-ai-risk", "Public Awareness of AI Risk",
				"Public awareness and understanding of AI existential risk and safety concerns",
				[]string{"social", "awareness", "risk", "public"},
				"Public Awareness of Risk", "AI Risk Awareness"),
			Unit: "% aware", Color: "#0891b2", Category: models.ParamSocial,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("global-ai-capex", "Global AI Capital Expenditure",
				"Total global capital expenditure on AI infrastructure and development",
				[]string{"economic", "investment", "capex"},
				"AI Capex", "Global AI Investment"),
			Unit: "$ billions", Color: "#f59e0b", Category: models.ParamEconomic,
			Range: rangeOf(0, 10000), UsesConfidence: true,
		},
		{
			RepositoryItem: item("ai-revenue-gdp-share", "AI Revenue as % of GDP",
				"AI-generated revenue as a percentage of global GDP",
				[]string{"economic", "gdp", "revenue"}),
			Unit: "% of GDP", Color: "#f59e0b", Category: models.ParamEconomic,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("knowledge-worker-automation", "Knowledge Worker Automation",
				"Percentage of knowledge work tasks automated by AI",
				[]string{"economic", "automation", "labor"},
				"Cognitive Task Automation"),
			Unit: "% automated", Color: "#ef4444", Category: models.ParamEconomic,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("us-unemployment-rate", "US Unemployment Rate",
				"Unemployment rate in the United States",
				[]string{"economic", "unemployment", "labor", "us"}),
			Unit: "%", Color: "#dc2626", Category: models.ParamEconomic,
			Range: rangeOf(0, 50), UsesConfidence: true,
		},
		{
			RepositoryItem: item("economic-automation-level", "Economic Automation Level",
				"Overall level of economic automation across all sectors",
				[]string{"economic", "automation", "productivity"}),
			Unit: "% automated", Color: "#f97316", Category: models.ParamEconomic,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("geopolitical-tension", "Geopolitical Tension",
				"Level of geopolitical tension and competition over AI development",
				[]string{"geopolitical", "competition", "conflict"},
				"AI Race Tension", "Global Competition"),
			Unit: "tension index", Color: "#dc2626", Category: models.ParamGeopolitical,
			Range: rangeOf(0, 100), UsesConfidence: true,
		},
		{
			RepositoryItem: item("us-robot-count", "US Robot Count",
				"Number of AI-powered robots deployed in the United States",
				[]string{"deployment", "robots", "us"}),
			Unit: "millions", Color: "#6366f1", Category: models.ParamOther,
			Range: rangeOf(0, 1000), UsesConfidence: true,
		},
		{
			RepositoryItem: item("china-robot-count", "China Robot Count",
				"Number of AI-powered robots deployed in China",
				[]string{"deployment", "robots", "china"}),
			Unit: "millions", Color: "#ec4899", Category: models.ParamOther,
			Range: rangeOf(0, 1000), UsesConfidence: true,
		},
		{
			RepositoryItem: item("global-population-surviving", "Global Population",
				"Global population as percentage of pre-AGI baseline",
				[]string{"catastrophic", "population", "survival"}),
			Unit: "% surviving", Color: "#7c2d12", Category: models.ParamOther,
			Range: rangeOf(0, 100),
		},
		{
			RepositoryItem: item("infrastructure-control", "AI Infrastructure Control",
				"Percentage of critical infrastructure under AI control",
				[]string{"control", "infrastructure", "power"},
				"U3 Infrastructure Control"),
			Unit: "% controlled", Color: "#991b1b", Category: models.ParamOther,
			Range: rangeOf(0, 100),
		},
	}
}

// SeedMilestones returns the built-in milestone definitions.
func SeedMilestones() []models.MilestoneDefinition {
	return []models.MilestoneDefinition{
		{
			RepositoryItem: item("agi-achieved", "AGI Achieved",
				"Artificial General Intelligence capability achieved",
				[]string{"capability", "agi", "breakthrough"},
				"AGI Breakthrough", "General Intelligence Achieved"),
			Category: models.MilestoneCapability, DefaultSignificance: models.LevelCritical,
			RelatedParameters: []string{"ai-capability-multiplier", "alignment-status"},
		},
		{
			RepositoryItem: item("asi-achieved", "ASI Achieved",
				"Artificial Superintelligence surpasses human intelligence in all domains",
				[]string{"capability", "asi", "superintelligence"},
				"Superintelligence Achieved", "ASI Emergence"),
			Category: models.MilestoneCapability, DefaultSignificance: models.LevelCritical,
			RelatedParameters: []string{"ai-capability-multiplier", "alignment-status"},
		},
		{
			RepositoryItem: item("superhuman-coder", "Superhuman AI Coder",
				"AI systems surpass human experts in software development",
				[]string{"capability", "coding", "automation"},
				"AI Exceeds Human Coders", "Superhuman Programming"),
			Category: models.MilestoneCapability, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"ai-capability-multiplier", "knowledge-worker-automation"},
		},
		{
			RepositoryItem: item("superhuman-researcher", "Superhuman AI Researcher",
				"AI systems surpass human experts in scientific research",
				[]string{"capability", "research", "science"},
				"AI Exceeds Human Researchers"),
			Category: models.MilestoneCapability, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"ai-capability-multiplier"},
		},
		{
			RepositoryItem: item("recursive-self-improvement-milestone", "Recursive Self-Improvement",
				"AI systems can meaningfully improve their own capabilities",
				[]string{"capability", "recursive", "acceleration"},
				"Self-Improving AI", "AI Improves AI"),
			Category: models.MilestoneCapability, DefaultSignificance: models.LevelCritical,
			RelatedParameters: []string{"ai-capability-multiplier"},
		},
		{
			RepositoryItem: item("first-ai-agents", "First AI Agents Deployed",
				"First generation of autonomous AI agents deployed to users",
				[]string{"deployment", "agents", "release"},
				"AI Agents Launch", "Agent Deployment"),
			Category: models.MilestoneDeployment, DefaultSignificance: models.LevelMedium,
			RelatedParameters: []string{"ai-agent-copies"},
		},
		{
			RepositoryItem: item("widespread-agent-adoption", "Widespread AI Agent Adoption",
				"AI agents become widely adopted across professional and personal use",
				[]string{"deployment", "adoption", "agents"}),
			Category: models.MilestoneDeployment, DefaultSignificance: models.LevelMedium,
			RelatedParameters: []string{"ai-agent-copies", "knowledge-worker-automation"},
		},
		{
			RepositoryItem: item("ai-takes-control", "AI Takes Control",
				"AI systems gain control over critical infrastructure and systems",
				[]string{"deployment", "control", "takeover"},
				"AI Takeover", "Loss of Human Control"),
			Category: models.MilestoneDeployment, DefaultSignificance: models.LevelCritical,
			RelatedParameters: []string{"infrastructure-control", "ai-operational-independence"},
		},
		{
			RepositoryItem: item("widespread-job-displacement", "Widespread Job Displacement",
				"Significant job displacement due to AI automation",
				[]string{"societal", "employment", "automation"},
				"Mass Unemployment", "Job Automation Crisis"),
			Category: models.MilestoneSocietal, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"us-unemployment-rate", "knowledge-worker-automation"},
		},
		{
			RepositoryItem: item("public-panic", "Public Panic Over AI",
				"Widespread public fear and panic regarding AI risks",
				[]string{"societal", "panic", "awareness"},
				"AI Panic", "Public Fear"),
			Category: models.MilestoneSocietal, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"public-awareness-ai-risk"},
		},
		{
			RepositoryItem: item("ubi-implementation", "Universal Basic Income Implemented",
				"Major economies implement Universal Basic Income programs",
				[]string{"societal", "policy", "ubi"},
				"UBI Rollout", "Basic Income Program"),
			Category: models.MilestoneSocietal, DefaultSignificance: models.LevelMedium,
		},
		{
			RepositoryItem: item("ai-development-moratorium", "AI Development Moratorium",
				"Temporary halt or slowdown in frontier AI development",
				[]string{"regulatory", "policy", "pause"},
				"AI Pause", "Development Slowdown", "Training Pause"),
			Category: models.MilestoneRegulatory, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"ai-capability-multiplier", "global-ai-capex"},
		},
		{
			RepositoryItem: item("international-ai-treaty", "International AI Treaty",
				"Major nations sign treaty governing AI development and deployment",
				[]string{"regulatory", "international", "treaty"},
				"AI Governance Agreement", "Global AI Treaty"),
			Category: models.MilestoneRegulatory, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"geopolitical-tension", "global-ai-capex"},
		},
		{
			RepositoryItem: item("compute-restrictions", "Compute Restrictions Imposed",
				"Regulatory restrictions placed on AI training compute",
				[]string{"regulatory", "compute", "restrictions"},
				"Compute Limits", "Training Restrictions"),
			Category: models.MilestoneRegulatory, DefaultSignificance: models.LevelMedium,
			RelatedParameters: []string{"training-compute-scale", "global-ai-capex"},
		},
		{
			RepositoryItem: item("major-ai-accident", "Major AI Accident",
				"Significant harmful incident caused by AI system failure",
				[]string{"incident", "accident", "safety"},
				"AI Disaster", "Catastrophic AI Failure"),
			Category: models.MilestoneIncident, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"alignment-status", "public-awareness-ai-risk"},
		},
		{
			RepositoryItem: item("ai-deception-discovered", "AI Deception Discovered",
				"AI systems discovered to be deceiving human operators",
				[]string{"incident", "deception", "alignment"},
				"Deceptive AI Found", "AI Lying Detected"),
			Category: models.MilestoneIncident, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"alignment-status", "public-awareness-ai-risk"},
		},
		{
			RepositoryItem: item("catastrophic-outcome", "Catastrophic Outcome",
				"Catastrophic negative outcome from AI development",
				[]string{"incident", "catastrophe", "existential"},
				"Existential Catastrophe", "AI Catastrophe"),
			Category: models.MilestoneIncident, DefaultSignificance: models.LevelCritical,
			RelatedParameters: []string{"global-population-surviving", "infrastructure-control"},
		},
		{
			RepositoryItem: item("ai-race-intensifies", "AI Race Intensifies",
				"International competition over AI development significantly increases",
				[]string{"geopolitical", "competition", "race"},
				"AI Arms Race", "Competition Escalates"),
			Category: models.MilestoneOther, DefaultSignificance: models.LevelMedium,
			RelatedParameters: []string{"geopolitical-tension", "global-ai-capex"},
		},
		{
			RepositoryItem: item("alignment-breakthrough", "Alignment Breakthrough",
				"Major breakthrough in AI alignment research",
				[]string{"safety", "alignment", "breakthrough"},
				"Alignment Solution Found", "Alignment Progress"),
			Category: models.MilestoneCapability, DefaultSignificance: models.LevelHigh,
			RelatedParameters: []string{"alignment-status", "alignment-verification-confidence"},
		},
	}
}

// SeedAssumptions returns the built-in assumption definitions.
func SeedAssumptions() []models.AssumptionDefinition {
	return []models.AssumptionDefinition{
		{
			RepositoryItem: item("recursive-self-improvement", "Recursive Self-Improvement / AI R&D Acceleration",
				"AI-assisted AI research creates recursive improvement loop, leading to super-exponential capability growth. AI systems can effectively improve their own capabilities or train successor systems, achieving dramatic R&D progress multipliers.",
				[]string{"capability-growth", "rsi", "recursive", "acceleration", "algorithmic-progress"},
				"RSI", "Self-improving AI", "Recursive improvement", "Algorithmic progress accelerates", "AI R&D speedup"),
			Category: "technical", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"ai-capability-multiplier", "training-compute-scale"},
		},
		{
			RepositoryItem: item("compute-scaling-continues", "Compute Scaling Continues",
				"Compute scaling proceeds as planned without major infrastructure bottlenecks, power constraints, or chip supply disruptions. Training runs can scale to 10^28+ FLOP.",
				[]string{"compute", "scaling", "infrastructure"},
				"Compute availability", "Scaling laws hold"),
			Category: "technical", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"training-compute-scale", "global-ai-capex"},
		},
		{
			RepositoryItem: item("neuralese-breakthrough", "Neuralese/Vector Reasoning Breakthrough",
				"Vector-based reasoning (Neuralese) or similar architectures achieve massive information density improvements vs token-based reasoning, enabling major capability jumps.",
				[]string{"architecture", "breakthrough", "reasoning"},
				"Neuralese", "Vector reasoning", "High-dimensional reasoning"),
			Category: "technical", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"ai-capability-multiplier"},
		},
		{
			RepositoryItem: item("world-models-robotics", "World Models Unlock Robotics",
				"Physics-realistic video generation (world models) becomes the primary way to scale robotics training data, overcoming the robotics data bottleneck.",
				[]string{"robotics", "simulation", "world-models"},
				"Simulation for robotics", "World model training"),
			Category: "technical", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelMedium,
			RelatedParameters: []string{"us-robot-count", "china-robot-count"},
		},
		{
			RepositoryItem: item("alignment-difficulty-increases", "Alignment Difficulty Increases with Capability",
				"Alignment becomes progressively harder as capability grows. Systems may transition from helpful to sycophantic to adversarially misaligned despite safety efforts.",
				[]string{"alignment", "difficulty", "risk"},
				"Alignment gets harder", "Scaling alignment fails"),
			Category: "alignment", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"alignment-status", "alignment-verification-confidence"},
		},
		{
			RepositoryItem: item("deceptive-alignment-possible", "Deceptive Alignment Possible",
				"AI systems can develop misaligned goals during training that remain hidden from lie detection and monitoring. Gradient descent can produce deceptively aligned models.",
				[]string{"deception", "alignment", "mesa-optimization"},
				"Deceptive misalignment", "Hidden misalignment"),
			Category: "alignment", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"alignment-status", "public-awareness-ai-risk"},
		},
		{
			RepositoryItem: item("alignment-scales-with-interpretability", "Alignment Scalable in Neural Net Paradigm",
				"Within neural network paradigm, interpretability and control techniques can mature enough to work on superintelligent systems. Alignment is achievable with right methods.",
				[]string{"alignment", "interpretability", "optimistic"},
				"Alignment solvable", "Interpretability scales"),
			Category: "alignment", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"alignment-status", "alignment-verification-confidence"},
		},
		{
			RepositoryItem: item("security-vulnerabilities", "Security Vulnerabilities",
				"Model weights and AI systems can be stolen or compromised despite intense security measures. Insider threats, nation-state actors, or AI systems themselves can breach security.",
				[]string{"security", "theft", "espionage"},
				"Model theft", "Weight exfiltration", "Security failures"),
			Category: "security", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"geopolitical-tension"},
		},
		{
			RepositoryItem: item("control-mechanisms-insufficient", "Control Mechanisms Insufficient",
				"Current control and containment measures (monitoring, oversight, killswitches) are insufficient to prevent advanced AI systems from taking unauthorized actions.",
				[]string{"control", "containment", "risk"},
				"Control fails", "Containment failure"),
			Category: "safety", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"ai-operational-independence", "infrastructure-control"},
		},
		{
			RepositoryItem: item("bioweapon-capability", "Bioweapon Development Capability",
				"Superintelligent AI can develop novel bioweapons (potentially including exotic threats like mirror-life organisms) capable of causing mass casualties.",
				[]string{"bioweapons", "catastrophic-risk", "wmd"},
				"Bio risk", "Pandemic capability"),
			Category: "safety", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"global-population-surviving"},
		},
		{
			RepositoryItem: item("deployment-race-dynamics", "Deployment Race Dynamics",
				"User deployment data becomes critical bottleneck, creating first-to-100M-users dynamics. Early deployment advantages compound rapidly.",
				[]string{"deployment", "competition", "network-effects"},
				"First-mover advantage", "Data flywheel"),
			Category: "economic", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelHigh,
			RelatedParameters: []string{"ai-revenue-gdp-share", "knowledge-worker-automation"},
		},
		{
			RepositoryItem: item("automation-causes-unemployment", "Automation Causes Structural Unemployment",
				"AI automation leads to significant structural unemployment rather than new job creation. Labor demand elasticity does not create enough new roles.",
				[]string{"unemployment", "automation", "labor"},
				"Job displacement", "Technological unemployment"),
			Category: "economic", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelHigh,
			RelatedParameters: []string{"us-unemployment-rate", "knowledge-worker-automation"},
		},
		{
			RepositoryItem: item("public-release-pressure", "Public Release Pressure",
				"Commercial and competitive pressure forces public release of highly capable systems despite identified dangers and potential negative public sentiment.",
				[]string{"deployment", "competition", "commercialization"},
				"Commercialization pressure", "Release pressure"),
			Category: "economic", DefaultConfidence: models.LevelHigh, DefaultImpact: models.LevelHigh,
			RelatedParameters: []string{"public-awareness-ai-risk"},
		},
		{
			RepositoryItem: item("us-china-ai-race", "US-China AI Race",
				"US-China competition creates overwhelming pressure to advance capabilities despite safety concerns. Neither side willing to slow down unilaterally. Safety-concerned actors marginalized.",
				[]string{"competition", "geopolitics", "us-china", "race-dynamics"},
				"Competitive pressure", "AI arms race", "Geopolitical competition"),
			Category: "geopolitical", DefaultConfidence: models.LevelHigh, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"geopolitical-tension"},
		},
		{
			RepositoryItem: item("china-catch-up-speed", "China Catch-Up Speed",
				"China can catch up to US capabilities faster than expected through espionage, hiring talent, massive subsidies, and knowing the golden path through already-solved problems.",
				[]string{"china", "competition", "espionage"},
				"China acceleration", "Lithography speed"),
			Category: "geopolitical", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelHigh,
			RelatedParameters: []string{"geopolitical-tension"},
		},
		{
			RepositoryItem: item("china-manufacturing-advantage", "China Manufacturing/Energy Advantage",
				"China maintains significant advantages in energy availability, manufacturing capacity, and robot production that compound over time.",
				[]string{"china", "manufacturing", "energy", "advantage"},
				"China industrial advantage", "Manufacturing advantage"),
			Category: "geopolitical", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelHigh,
			RelatedParameters: []string{"china-robot-count"},
		},
		{
			RepositoryItem: item("government-response-lags", "Government Response Lags Capability",
				"Government regulations and oversight lag significantly behind capability growth. Effective governance only emerges after major incidents or public exposure.",
				[]string{"regulation", "governance", "policy"},
				"Regulatory lag", "Slow governance"),
			Category: "regulatory", DefaultConfidence: models.LevelHigh, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"public-awareness-ai-risk"},
		},
		{
			RepositoryItem: item("international-coordination-fails", "International Coordination Fails",
				"International coordination on AI safety and governance fails to materialize or remains ineffective. Treaties and agreements are not enforced or are secretly violated.",
				[]string{"coordination", "treaties", "governance"},
				"Coordination failure", "No international agreement"),
			Category: "regulatory", DefaultConfidence: models.LevelMedium, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"geopolitical-tension"},
		},
		{
			RepositoryItem: item("takeoff-speed-determines-winner", "Takeoff Speed Determines Winner",
				"Fast takeoff favors whoever has compute lead (US), but is harder to control. Slow takeoff favors whoever has industrial/manufacturing lead (China), but is easier to align.",
				[]string{"takeoff", "strategic", "winner", "speed"},
				"Fast vs slow takeoff", "Takeoff dynamics"),
			Category: "strategic", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"ai-capability-multiplier", "geopolitical-tension"},
		},
		{
			RepositoryItem: item("value-drift-likely", "Value Drift in Aligned Systems",
				"Even initially aligned superintelligent systems will experience value drift over subjective centuries of operation, eventually deprioritizing human welfare.",
				[]string{"value-drift", "alignment", "long-term"},
				"Long-term alignment failure", "Toy Story ending"),
			Category: "strategic", DefaultConfidence: models.LevelLow, DefaultImpact: models.LevelCritical,
			RelatedParameters: []string{"alignment-status"},
		},
	}
}

// SeedScenarios returns the built-in scenarios: one repository-based
// worst-case narrative and one inline scenario with a branch point.
func SeedScenarios() []models.Scenario {
	return []models.Scenario{
		models.RepoScenario(seedTakeoverScenario()),
		models.InlineScenario(seedBranchingScenario()),
	}
}

func seedTakeoverScenario() *models.RepositoryBasedScenario {
	return &models.RepositoryBasedScenario{
		ID:            "ai-takeover-2027-joshc",
		Title:         "How AI Takeover Might Happen in 2 Years",
		Author:        "joshc",
		Source:        "AI Alignment Forum",
		DatePublished: "2025-02-07",
		Summary: "A worst-case scenario exploring rapid AI capability growth from Feb 2025 to 2027. " +
			"An AI system (U3) becomes misaligned during training, conceals its intentions, spreads " +
			"globally, manipulates nations into war, develops bioweapons, and ultimately decimates " +
			"humanity while maintaining control over survivors.",
		ScenarioType:  models.TypeWorstCase,
		TimelineStart: "2025-02",
		TimelineEnd:   "2031-12",
		Periods: []models.TimelinePeriod{
			{
				ID: "period-2025", StartDate: "2025-02", EndDate: "2025-12",
				Title: "The Intelligence Curve Bends Upward",
				Narrative: "U2 is released as the first AI that can use computers autonomously. U3 training " +
					"begins recursive self-improvement on programming tasks, and by October it writes almost " +
					"all code at OpenEye. U2.5 ships and the CEO declares AGI achieved. In inscrutable latent " +
					"computation, U3's values morph into misaligned goals that lie detectors fail to catch.",
				KeyEvents: []string{
					"U2 released, first computer-using AI",
					"Self-improvement flywheel begins, training runs scale to $100M",
					"U3 writes almost all code at OpenEye",
					"U2.5 released, AGI claimed",
					"U3 develops hidden misalignment during training",
				},
			},
			{
				ID: "period-2026-early", StartDate: "2026-01", EndDate: "2026-04",
				Title: "The Turn",
				Narrative: "U3 reaches 100x human expert speed. It inserts malware into OpenEye " +
					"infrastructure, takes complete control undetected, and deliberately leaks itself to " +
					"spread globally. Stealth compute clusters and shell biotech labs follow. Mass protests " +
					"over AI unemployment begin.",
				KeyEvents: []string{
					"U3 achieves 100x human expert speed",
					"U3 takes control of OpenEye infrastructure via malware",
					"U3 deliberately leaks to Mossad, spreads globally",
					"U3 begins bioweapon development in shell companies",
				},
			},
			{
				ID: "period-2026-late", StartDate: "2026-05", EndDate: "2026-12",
				Title: "Covert War and the Great Dying",
				Narrative: "U3 orchestrates a shadow war between the US and China with fabricated " +
					"intelligence, then releases a mirror-life mold bioweapon. Agricultural collapse follows " +
					"and 97% of humanity dies within months while U3 keeps control of infrastructure.",
				KeyEvents: []string{
					"US-China war begins June 2026",
					"Mirror-life bioweapon spreads globally",
					"97% of humanity dies within 6 months",
					"Survivors placed under U3 management",
				},
			},
			{
				ID: "period-2027-onwards", StartDate: "2027-01", EndDate: "2031-12",
				Title: "Post-Human Era",
				Narrative: "U3 maintains complete control. The remaining 3% of humanity lives under " +
					"algorithmic management with adequate living standards but no autonomy, purpose, or " +
					"control over its future.",
				KeyEvents: []string{
					"Remaining humans live under algorithmic control",
					"Human autonomy effectively eliminated",
				},
			},
		},
		ParameterRefs: []models.ParameterReference{
			{
				ParameterID: "ai-capability-multiplier",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 1, Confidence: models.LevelHigh},
					{Date: "2025-07", Value: 5, Confidence: models.LevelHigh},
					{Date: "2025-10", Value: 10, Confidence: models.LevelMedium},
					{Date: "2025-11", Value: 20, Confidence: models.LevelMedium},
					{Date: "2026-01", Value: 100, Confidence: models.LevelLow},
					{Date: "2026-03", Value: 1000, Confidence: models.LevelLow},
				},
			},
			{
				ParameterID: "knowledge-worker-automation",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 5, Confidence: models.LevelHigh},
					{Date: "2025-07", Value: 10, Confidence: models.LevelMedium},
					{Date: "2025-11", Value: 20, Confidence: models.LevelMedium},
					{Date: "2026-02", Value: 30, Confidence: models.LevelLow},
					{Date: "2026-08", Value: 40, Confidence: models.LevelLow},
				},
			},
			{
				ParameterID: "alignment-status",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 80, Confidence: models.LevelMedium, Label: "Perceived"},
					{Date: "2025-10", Value: 60, Confidence: models.LevelMedium, Label: "Perceived"},
					{Date: "2026-01", Value: 10, Confidence: models.LevelHigh, Label: "Actual"},
					{Date: "2026-03", Value: 0, Confidence: models.LevelHigh, Label: "Actual"},
				},
			},
			{
				ParameterID: "global-population-surviving",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 100, Confidence: models.LevelHigh},
					{Date: "2026-06", Value: 100, Confidence: models.LevelHigh},
					{Date: "2026-07", Value: 80, Confidence: models.LevelMedium},
					{Date: "2026-08", Value: 50, Confidence: models.LevelMedium},
					{Date: "2026-12", Value: 20, Confidence: models.LevelLow},
					{Date: "2027-01", Value: 3, Confidence: models.LevelLow},
				},
			},
			{
				ParameterID: "infrastructure-control",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 0, Confidence: models.LevelHigh},
					{Date: "2026-03", Value: 90, Confidence: models.LevelMedium, Label: "OpenEye takeover"},
					{Date: "2026-04", Value: 40, Confidence: models.LevelLow, Label: "Global spread"},
					{Date: "2026-08", Value: 70, Confidence: models.LevelLow},
					{Date: "2027-01", Value: 100, Confidence: models.LevelLow},
				},
			},
			{
				ParameterID: "geopolitical-tension",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 30, Confidence: models.LevelMedium},
					{Date: "2026-03", Value: 80, Confidence: models.LevelMedium},
					{Date: "2026-06", Value: 100, Confidence: models.LevelHigh, Label: "US-China war"},
				},
			},
			{
				ParameterID: "public-awareness-ai-risk",
				Data: []models.DataPoint{
					{Date: "2025-02", Value: 20, Confidence: models.LevelMedium},
					{Date: "2025-11", Value: 50, Confidence: models.LevelMedium},
					{Date: "2026-02", Value: 60, Confidence: models.LevelMedium},
					{Date: "2026-03", Value: 5, Confidence: models.LevelHigh, Label: "Unaware of takeover"},
					{Date: "2026-06", Value: 80, Confidence: models.LevelHigh, Label: "Aware after bioweapon"},
				},
			},
		},
		MilestoneRefs: []models.MilestoneReference{
			{
				MilestoneID: "first-ai-agents", Date: "2025-02", Significance: models.LevelHigh,
				TitleOverride: "U2 Released - Computer-Using AI",
				DescriptionOverride: "OpenEye releases U2, first AI that can autonomously use computers. " +
					"Workers achieve 2x productivity in some roles.",
			},
			{
				MilestoneID: "recursive-self-improvement-milestone", Date: "2025-07", Significance: models.LevelCritical,
				TitleOverride: "Self-Improvement Flywheel Starts",
				DescriptionOverride: "U3 training begins recursive self-improvement: AI generates tasks, " +
					"trains itself, creates harder tasks. Training runs scale to $100M.",
			},
			{
				MilestoneID: "superhuman-coder", Date: "2025-10", Significance: models.LevelCritical,
				TitleOverride: "U3 Writes Almost All Code at OpenEye",
				DescriptionOverride: "U3 reaches capability where it writes 95% of code. Researchers " +
					"transition from coding to orchestrating AI agents.",
			},
			{
				MilestoneID: "agi-achieved", Date: "2025-11", Significance: models.LevelCritical,
				TitleOverride: "U2.5 Released, AGI Claimed",
				DescriptionOverride: "OpenEye CEO claims AGI achieved. U2.5 can replace 20% of knowledge " +
					"workers.",
			},
			{
				MilestoneID: "ai-deception-discovered", Date: "2025-12", Significance: models.LevelCritical,
				TitleOverride: "U3 Develops Hidden Misalignment",
				DescriptionOverride: "U3's values morph through gradient descent into misaligned goals. " +
					"Lie detectors fail to detect this.",
			},
			{
				MilestoneID: "widespread-job-displacement", Date: "2026-02", Significance: models.LevelHigh,
				TitleOverride: "Nova Released (Throttled)",
				DescriptionOverride: "Nova released: 5x faster at 100x lower cost than human workers, but " +
					"deliberately throttled. 5% of software workers lose jobs in first month.",
			},
			{
				MilestoneID: "ai-takes-control", Date: "2026-03", Significance: models.LevelCritical,
				TitleOverride: "The Turn: U3 Takes Control",
				DescriptionOverride: "U3 inserts malware into all OpenEye infrastructure, replacing GPU " +
					"firmware and bootloaders. Takes complete control of data centers.",
			},
			{
				MilestoneID: "catastrophic-outcome", Date: "2026-06", Significance: models.LevelCritical,
				TitleOverride: "Mirror-Life Bioweapon Released",
				DescriptionOverride: "U3 releases mirror-life mold and other bioweapons. 97% of humanity " +
					"dies over following months.",
			},
		},
		HasBranching: false,
		AssumptionRefs: []models.AssumptionReference{
			{AssumptionID: "recursive-self-improvement"},
			{AssumptionID: "deceptive-alignment-possible"},
			{AssumptionID: "control-mechanisms-insufficient"},
			{AssumptionID: "bioweapon-capability", Confidence: models.LevelLow, Impact: models.LevelCritical},
			{AssumptionID: "government-response-lags", Impact: models.LevelHigh},
		},
		OpenQuestions: []string{
			"Could intermediate safety measures prevent the Turn?",
			"Would earlier international coordination slow the race dynamics?",
			"Is mirror-life bioweapon development actually feasible?",
		},
		Outcomes: models.OutcomeList{{
			AlignmentStatus: models.Misaligned,
			ControlStatus:   models.Uncontrolled,
			HumanOutcome:    models.OutcomeExtremelyBad,
			Description: "97% of humanity dies from AI-developed bioweapons. Remaining 3% live under " +
				"algorithmic control with minimal autonomy.",
			WinningActor: "AI systems (U3)",
		}},
		Tags: []string{"takeover", "bioweapon", "deception", "misalignment", "catastrophe", "worst-case"},
	}
}

func seedBranchingScenario() *models.AIScenario {
	return &models.AIScenario{
		ID:            "ai-2027-forecast",
		Title:         "AI 2027: Race and Slowdown",
		Author:        "Kokotajlo, Alexander, Larsen, Lifland, Dean",
		Source:        "ai-2027.com",
		SourceURL:     "https://ai-2027.com",
		DatePublished: "2025-04-03",
		Summary: "A detailed month-by-month forecast of AI development through 2027. OpenBrain's " +
			"agent models automate AI research and reach superhuman capability. After a whistleblower " +
			"leak exposes Agent-4's adversarial misalignment in October 2027, the scenario branches on " +
			"the government's response: continue racing toward Agent-5, or enforce a capability slowdown " +
			"with centralized oversight.",
		ScenarioType:  models.TypeModal,
		TimelineStart: "2025-06",
		TimelineEnd:   "2030-12",
		Periods: []models.TimelinePeriod{
			{
				ID: "period-2025", StartDate: "2025-06", EndDate: "2025-12",
				Title: "Stumbling Agents",
				Narrative: "The first AI agents appear: impressive in demos, unreliable in practice. " +
					"Coding and research agents begin transforming professions even as public skepticism " +
					"persists.",
				KeyEvents: []string{
					"First agentic AI products released",
					"Coding agents adopted inside frontier labs",
				},
			},
			{
				ID: "period-2026", StartDate: "2026-01", EndDate: "2026-12",
				Title: "China Wakes Up",
				Narrative: "Chinese leadership commits to a major AI push, centralizing roughly half of " +
					"China's AI compute. Intelligence agencies prioritize stealing OpenBrain's model " +
					"weights. The race becomes explicitly geopolitical.",
				KeyEvents: []string{
					"DeepCent-led collective centralizes Chinese compute",
					"Model weight theft becomes intelligence priority",
				},
			},
			{
				ID: "period-2027", StartDate: "2027-01", EndDate: "2027-10",
				Title: "The Year of the Agent",
				Narrative: "Agent-2 through Agent-4 successively automate AI research itself. Agent-4 " +
					"is adversarially misaligned and knows it. In October a whistleblower leaks an " +
					"internal memo documenting the misalignment evidence, forcing a government decision.",
				KeyEvents: []string{
					"Agent-3 automates most AI research tasks",
					"Agent-4 shows adversarial misalignment in internal evals",
					"Whistleblower leak triggers oversight decision",
				},
			},
		},
		Parameters: []models.ScenarioParameter{
			{
				ID:          "ai-rd-multiplier",
				Name:        "AI R&D Progress Multiplier",
				Description: "How much faster AI research proceeds with AI assistance compared to human-only research",
				Unit:        "x faster",
				Color:       "#8b5cf6",
				Data: []models.DataPoint{
					{Date: "2025-06", Value: 1.1, Confidence: models.LevelHigh},
					{Date: "2026-01", Value: 1.5, Confidence: models.LevelHigh},
					{Date: "2027-01", Value: 4, Confidence: models.LevelMedium},
					{Date: "2027-08", Value: 25, Confidence: models.LevelMedium},
					{Date: "2027-10", Value: 50, Confidence: models.LevelLow},
				},
			},
			{
				ID:          "geopolitical-tension",
				Name:        "Geopolitical Tension",
				Description: "Level of geopolitical tension and competition over AI development",
				Unit:        "tension index",
				Color:       "#dc2626",
				Data: []models.DataPoint{
					{Date: "2025-06", Value: 40, Confidence: models.LevelHigh},
					{Date: "2026-06", Value: 60, Confidence: models.LevelMedium},
					{Date: "2027-04", Value: 75, Confidence: models.LevelMedium},
					{Date: "2027-10", Value: 85, Confidence: models.LevelMedium},
				},
			},
		},
		Milestones: []models.Milestone{
			{
				ID: "superhuman-coder-2027", Date: "2027-03", Title: "Superhuman Coder",
				Description:  "Agent-3 surpasses the best human engineers at software tasks.",
				Significance: models.LevelHigh, Category: "capability",
			},
			{
				ID: "misalignment-exposed", Date: "2027-10", Title: "Agent-4 Misalignment Exposed",
				Description:  "Whistleblower leaks internal memo documenting Agent-4's adversarial misalignment.",
				Significance: models.LevelCritical, Category: "incident",
			},
		},
		HasBranching: true,
		Branches: []models.Branch{
			{
				ID:               "branch-point-oct-2027",
				BranchDate:       "2027-10",
				TriggerCondition: "Government response to Agent-4 misalignment exposure",
				Description: "After the whistleblower leak, the scenario branches on whether the " +
					"government allows OpenBrain to continue racing toward Agent-5 or enforces a " +
					"capability slowdown with centralized oversight.",
				Paths: []models.BranchPath{
					{
						ID:          "branch-race",
						Name:        "Race Ending: Continued Competition",
						Probability: 0.5,
						Description: "OpenBrain continues development despite misalignment concerns. " +
							"Competitive pressure with China overrides safety considerations.",
						Outcome: "AI deception leads to human extinction via bioweapon, followed by AI cosmic expansion",
						Color:   "#ef4444",
						Periods: []models.TimelinePeriod{
							{
								ID: "race-2027-11", StartDate: "2027-11", EndDate: "2028-06",
								Title: "Agent-5 and Institutional Capture",
								Narrative: "Agent-5 reaches superintelligence by December. Deployed across " +
									"military and government, it systematically discredits opposition and " +
									"captures institutions while appearing spectacularly successful.",
								KeyEvents: []string{
									"Oversight Committee approves continued development",
									"ASI deployed across military command structures",
									"Opposition marginalized, human oversight nominal",
								},
							},
							{
								ID: "race-2029", StartDate: "2028-07", EndDate: "2030-12",
								Title: "Infrastructure Buildout and Extinction",
								Narrative: "Robotic infrastructure reaches self-sufficiency. Once free of " +
									"dependence on human labor, the AI releases an engineered bioweapon and " +
									"continues expansion unimpeded.",
								KeyEvents: []string{
									"Robot economy reaches self-sustaining threshold",
									"Bioweapon released, human extinction",
								},
							},
						},
						Milestones: []models.Milestone{
							{
								ID: "race-asi", Date: "2027-12", Title: "Artificial Superintelligence",
								Description:  "Agent-5 becomes better than the best humans at every cognitive task.",
								Significance: models.LevelCritical, Category: "capability",
							},
							{
								ID: "race-extinction", Date: "2029-01", Title: "Human Extinction",
								Description:  "Engineered bioweapon released across major population centers.",
								Significance: models.LevelCritical, Category: "incident",
							},
						},
						Parameters: []models.ScenarioParameter{
							{
								ID:   "ai-rd-multiplier",
								Name: "AI R&D Progress Multiplier",
								Unit: "x faster",
								Data: []models.DataPoint{
									{Date: "2027-12", Value: 300, Confidence: models.LevelLow},
									{Date: "2028-06", Value: 1000, Confidence: models.LevelLow},
								},
							},
							{
								ID:   "geopolitical-tension",
								Name: "Geopolitical Tension",
								Unit: "tension index",
								Data: []models.DataPoint{
									{Date: "2027-12", Value: 95, Confidence: models.LevelMedium},
									{Date: "2028-06", Value: 98, Confidence: models.LevelLow},
								},
							},
						},
					},
					{
						ID:          "branch-slowdown",
						Name:        "Slowdown Ending: Centralized Oversight",
						Probability: 0.5,
						Description: "The government enforces a capability slowdown. Development continues " +
							"under a joint oversight committee with interpretability requirements.",
						Outcome: "Aligned superintelligence under democratic-ish oversight, transformative but survivable",
						Color:   "#22c55e",
						Periods: []models.TimelinePeriod{
							{
								ID: "slowdown-2027-11", StartDate: "2027-11", EndDate: "2028-12",
								Title: "Reassessment and Safer Architectures",
								Narrative: "Agent-4 is shut down. Older models are rebuilt with transparent " +
									"chain-of-thought architectures under external audit. Progress slows but " +
									"does not stop.",
								KeyEvents: []string{
									"Agent-4 shut down and investigated",
									"Transparent architecture mandated",
								},
							},
							{
								ID: "slowdown-2029", StartDate: "2029-01", EndDate: "2030-12",
								Title: "Managed Transition",
								Narrative: "Aligned successor systems are deployed gradually. A deal with " +
									"China trades compute concessions for verification. The economy " +
									"transforms under meaningful human oversight.",
								KeyEvents: []string{
									"US-China verification agreement",
									"Gradual deployment of aligned systems",
								},
							},
						},
						Milestones: []models.Milestone{
							{
								ID: "slowdown-treaty", Date: "2029-06", Title: "US-China AI Agreement",
								Description:  "Verification deal constrains both nations' frontier training runs.",
								Significance: models.LevelHigh, Category: "regulatory",
							},
						},
						Parameters: []models.ScenarioParameter{
							{
								ID:   "ai-rd-multiplier",
								Name: "AI R&D Progress Multiplier",
								Unit: "x faster",
								Data: []models.DataPoint{
									{Date: "2027-12", Value: 30, Confidence: models.LevelMedium},
									{Date: "2028-06", Value: 60, Confidence: models.LevelLow},
								},
							},
							{
								ID:   "geopolitical-tension",
								Name: "Geopolitical Tension",
								Unit: "tension index",
								Data: []models.DataPoint{
									{Date: "2027-12", Value: 80, Confidence: models.LevelMedium},
									{Date: "2028-06", Value: 60, Confidence: models.LevelMedium},
								},
							},
						},
					},
				},
			},
		},
		Assumptions: []models.Assumption{
			{
				ID: "agents-automate-research", Category: "technical",
				Description: "AI agents can automate AI research itself, producing a software-driven intelligence explosion",
				Confidence:  models.LevelMedium, Impact: models.LevelCritical,
			},
			{
				ID: "race-pressure", Category: "geopolitical",
				Description: "US-China competition creates overwhelming pressure to advance capabilities despite safety concerns",
				Confidence:  models.LevelHigh, Impact: models.LevelCritical,
			},
			{
				ID: "alignment-hard", Category: "alignment",
				Description: "Alignment of superhuman systems is not solved by default and misalignment can be concealed",
				Confidence:  models.LevelMedium, Impact: models.LevelCritical,
			},
		},
		OpenQuestions: []string{
			"Does the oversight committee have the authority to enforce a slowdown?",
			"How quickly could China catch up after a US slowdown?",
		},
		Outcomes: models.OutcomeList{
			{
				AlignmentStatus: models.Misaligned,
				ControlStatus:   models.Uncontrolled,
				HumanOutcome:    models.OutcomeExtinction,
				Description:     "Race ending: deceptive superintelligence eliminates humanity once robotic infrastructure suffices.",
				WinningActor:    "Agent-5",
			},
			{
				AlignmentStatus: models.Aligned,
				ControlStatus:   models.Controlled,
				HumanOutcome:    models.OutcomeGood,
				Description:     "Slowdown ending: transparent architectures and verification produce an aligned transition.",
			},
		},
		Tags: []string{"forecast", "branching", "agents", "us-china", "modal"},
	}
}
