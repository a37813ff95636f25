package core

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// ForecastOptions control forecast generation. The zero value picks the
// current year and a derived scenario ID; tests pin both for determinism.
type ForecastOptions struct {
	CurrentYear int
	ScenarioID  string
}

// answerValues holds the parsed quiz answers with defaults applied.
type answerValues struct {
	agiYear          int
	devSpeed         int
	aiRevenuePeak    float64
	unemploymentPeak float64
	automationLevel  float64
	alignmentConcern int
	controlConf      int
	outlook          int
}

func parseAnswers(answers []models.QuizAnswer) answerValues {
	byID := make(map[string]string, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a.Value
	}

	intAnswer := func(id string, fallback int) int {
		if v, err := strconv.Atoi(byID[id]); err == nil {
			return v
		}
		return fallback
	}
	floatAnswer := func(id string, fallback float64) float64 {
		if v, err := strconv.ParseFloat(byID[id], 64); err == nil {
			return v
		}
		return fallback
	}

	return answerValues{
		agiYear:          intAnswer("agi-timeline", 2030),
		devSpeed:         intAnswer("development-speed", 3),
		aiRevenuePeak:    floatAnswer("ai-revenue-peak", 30),
		unemploymentPeak: floatAnswer("unemployment-peak", 25),
		automationLevel:  floatAnswer("automation-level", 50),
		alignmentConcern: intAnswer("alignment-concern", 5),
		controlConf:      intAnswer("control-confidence", 5),
		outlook:          intAnswer("overall-outlook", 3),
	}
}

// yearsToMaturity maps the development-speed answer to the number of years
// between AGI and a mature AI era.
func yearsToMaturity(devSpeed int) int {
	switch devSpeed {
	case 1:
		return 20
	case 2:
		return 10
	case 3:
		return 5
	case 4:
		return 3
	default:
		return 1
	}
}

// GenerateForecast derives a complete inline scenario from quiz answers
// using a fixed deterministic formula: sigmoid parameter curves inflecting
// at the AGI year, four narrative periods, and outlook-driven assumptions
// and outcome. Same answers and options always yield the same scenario.
func GenerateForecast(answers []models.QuizAnswer, options ForecastOptions) *models.AIScenario {
	v := parseAnswers(answers)

	currentYear := options.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}
	endYear := v.agiYear + yearsToMaturity(v.devSpeed)

	scenarioType := models.TypeModal
	if v.outlook <= 2 {
		scenarioType = models.TypePessimistic
	} else if v.outlook >= 4 {
		scenarioType = models.TypeOptimistic
	}

	id := options.ScenarioID
	if id == "" {
		id = fmt.Sprintf("quiz-forecast-%d", time.Now().UnixMilli())
	}

	return &models.AIScenario{
		ID:            id,
		Title:         "Your Custom AI Forecast",
		Author:        "Quiz Generated",
		Source:        "Foresight Quiz",
		DatePublished: fmt.Sprintf("%d-01-01", currentYear),
		Summary:       forecastSummary(v),
		ScenarioType:  scenarioType,
		TimelineStart: strconv.Itoa(currentYear),
		TimelineEnd:   strconv.Itoa(endYear),
		Periods:       forecastPeriods(v, currentYear, endYear),
		Parameters:    forecastParameters(v, currentYear, endYear),
		Milestones:    []models.Milestone{},
		HasBranching:  false,
		Assumptions:   forecastAssumptions(v),
		OpenQuestions: []string{
			"How will regulatory frameworks evolve to govern advanced AI systems?",
			"What role will international cooperation play in AI development and safety?",
			"How will society adapt to rapid technological changes?",
		},
		Outcomes: models.OutcomeList{forecastOutcome(v)},
		Tags:     []string{"quiz-generated", string(scenarioType), "custom-forecast"},
	}
}

func forecastSummary(v answerValues) string {
	speed := map[int]string{1: "gradual", 2: "steady", 3: "moderate", 4: "rapid"}[v.devSpeed]
	if speed == "" {
		speed = "explosive"
	}

	outlook := "uncertain"
	if v.outlook <= 2 {
		outlook = "concerning"
	} else if v.outlook >= 4 {
		outlook = "promising"
	}

	concern := "with manageable alignment challenges"
	if v.alignmentConcern >= 7 {
		concern = "with significant alignment concerns"
	} else if v.alignmentConcern >= 4 {
		concern = "with moderate alignment concerns"
	}

	return fmt.Sprintf("This forecast predicts AGI emergence around %d, followed by %s development. "+
		"The overall outlook is %s, %s. This scenario explores the potential societal, economic, and "+
		"technological transformations that may unfold as artificial intelligence reaches and surpasses "+
		"human-level capabilities.", v.agiYear, speed, outlook, concern)
}

func forecastPeriods(v answerValues, currentYear, endYear int) []models.TimelinePeriod {
	var periods []models.TimelinePeriod

	nearTermEnd := currentYear + 1
	if v.agiYear-2 > nearTermEnd {
		nearTermEnd = v.agiYear - 2
	}

	periods = append(periods, models.TimelinePeriod{
		ID:        "period-1",
		StartDate: strconv.Itoa(currentYear),
		EndDate:   strconv.Itoa(nearTermEnd),
		Title:     "Foundation Era: AI Capabilities Expand",
		Narrative: "The AI industry continues rapid growth with improvements in language models, computer vision, " +
			"and reasoning capabilities. Major tech companies invest heavily in AI research and infrastructure. " +
			"Early signs of economic disruption begin to appear as AI systems automate increasingly complex tasks.",
		KeyEvents: []string{
			"AI systems achieve near-human performance on many cognitive tasks",
			"Regulatory frameworks begin to emerge for AI safety and ethics",
			"First wave of job displacement in white-collar sectors",
			"AI investment reaches historic highs",
		},
		Metrics: map[string]float64{
			"AI Revenue % GDP":  5,
			"Unemployment Rate": 5,
			"Automation Level":  20,
		},
	})

	if v.agiYear > nearTermEnd {
		approach := "Progress on alignment continues with mixed results."
		lastEvent := "Growing concerns about AI control and safety"
		if v.outlook >= 4 {
			approach = "Breakthrough alignment techniques show promise."
			lastEvent = "Successful demonstrations of AI alignment techniques"
		} else if v.outlook <= 2 {
			approach = "Alignment challenges prove more difficult than anticipated."
		}

		periods = append(periods, models.TimelinePeriod{
			ID:        "period-2",
			StartDate: strconv.Itoa(nearTermEnd),
			EndDate:   strconv.Itoa(v.agiYear),
			Title:     "AGI Emergence: The Threshold Approaches",
			Narrative: "AI systems demonstrate increasingly general capabilities across diverse domains. " +
				"Public awareness and concern about transformative AI grows. Governments scramble to establish " +
				"international cooperation frameworks. " + approach,
			KeyEvents: []string{
				"First AI systems demonstrate general reasoning abilities",
				"International AI safety summit establishes preliminary guidelines",
				"Major breakthroughs in AI efficiency and capability",
				lastEvent,
			},
			Metrics: map[string]float64{
				"AI Revenue % GDP":  15,
				"Unemployment Rate": 10,
				"Automation Level":  35,
			},
		})
	}

	midPoint := (v.agiYear + endYear) / 2
	periods = append(periods, models.TimelinePeriod{
		ID:        "period-3",
		StartDate: strconv.Itoa(v.agiYear),
		EndDate:   strconv.Itoa(midPoint),
		Title:     "AGI Realized: Transformation Begins",
		Narrative: "Artificial General Intelligence is achieved. " + postAGINarrative(v),
		KeyEvents: []string{
			"First AGI system publicly demonstrated",
			fmt.Sprintf("Automation reaches %d%% of current jobs", int(v.automationLevel/2)),
			postAGICapabilityEvent(v),
			postAGISafetyEvent(v),
		},
		Metrics: map[string]float64{
			"AI Revenue % GDP":  math.Floor(v.aiRevenuePeak / 2),
			"Unemployment Rate": math.Floor(v.unemploymentPeak / 2),
			"Automation Level":  math.Floor(v.automationLevel / 2),
		},
	})

	matureTitle := "Mature AI Era: New Equilibrium"
	if v.devSpeed >= 4 {
		matureTitle = "Post-AGI: Rapid Transformation"
	}
	periods = append(periods, models.TimelinePeriod{
		ID:        "period-4",
		StartDate: strconv.Itoa(midPoint),
		EndDate:   strconv.Itoa(endYear),
		Title:     matureTitle,
		Narrative: finalPeriodNarrative(v),
		KeyEvents: finalPeriodEvents(v),
		Metrics: map[string]float64{
			"AI Revenue % GDP":  v.aiRevenuePeak,
			"Unemployment Rate": v.unemploymentPeak,
			"Automation Level":  v.automationLevel,
		},
	})

	return periods
}

func postAGINarrative(v answerValues) string {
	pace := "Progress continues but faces technical and regulatory constraints."
	if v.devSpeed >= 4 {
		pace = "Development accelerates dramatically beyond initial expectations."
	} else if v.devSpeed == 3 {
		pace = "AI capabilities continue to improve at a steady pace."
	}

	society := "Society grapples with both opportunities and challenges."
	if v.outlook >= 4 {
		society = "Careful deployment strategies help manage the transition."
	} else if v.outlook <= 2 {
		society = "Societal disruption intensifies as systems prove difficult to control."
	}
	return pace + " " + society
}

func postAGICapabilityEvent(v answerValues) string {
	if v.devSpeed >= 4 {
		return "AI capabilities begin recursive self-improvement"
	}
	return "Incremental improvements in AI capabilities continue"
}

func postAGISafetyEvent(v answerValues) string {
	if v.outlook <= 2 {
		return "First major AI safety incident"
	}
	if v.outlook >= 4 {
		return "Successful implementation of safety protocols"
	}
	return "Mixed results from safety measures"
}

func finalPeriodNarrative(v answerValues) string {
	switch {
	case v.outlook >= 4:
		return "AI systems prove to be powerful tools for human flourishing. Steady progress creates new " +
			"opportunities across society. Unemployment challenges are addressed through new job creation and " +
			"social support systems. Humanity enters a new era of abundance and capability."
	case v.outlook <= 2:
		return "The rapid advancement of AI systems creates severe societal strain. Significant job displacement " +
			"occurs across many sectors. Social tensions rise as inequality increases. Control and alignment " +
			"challenges prove more difficult than anticipated, leading to concerning developments."
	default:
		return "Society adapts to the AI-transformed world with mixed results. Significant structural changes " +
			"occur while employment transitions create disruption. Progress continues alongside persistent " +
			"challenges in ensuring beneficial AI development."
	}
}

func finalPeriodEvents(v answerValues) []string {
	var events []string

	if v.devSpeed >= 4 {
		events = append(events, "AI capabilities far exceed initial AGI benchmarks")
	} else {
		events = append(events, "AI systems mature and stabilize at advanced capabilities")
	}

	switch {
	case v.automationLevel >= 60:
		events = append(events, "Majority of traditional jobs fully automated")
	case v.automationLevel >= 40:
		events = append(events, "Nearly half of jobs automated or significantly transformed")
	default:
		events = append(events, "Significant automation across multiple sectors")
	}

	switch {
	case v.outlook >= 4:
		events = append(events,
			"Breakthrough solutions to climate change and disease",
			"New forms of human-AI collaboration emerge",
			"Economic prosperity reaches unprecedented levels")
	case v.outlook <= 2:
		events = append(events,
			"Multiple AI safety incidents raise existential concerns",
			"Social unrest increases due to rapid disruption",
			"International tensions over AI capabilities escalate")
	default:
		events = append(events,
			"Mixed outcomes across different societies and regions",
			"Ongoing debates about AI governance and control",
			"Gradual adaptation to new economic realities")
	}

	return events
}

func forecastParameters(v answerValues, currentYear, endYear int) []models.ScenarioParameter {
	return []models.ScenarioParameter{
		{
			ID:          "ai-revenue-gdp",
			Name:        "AI Revenue as % of GDP",
			Description: "The percentage of global GDP attributable to AI-related products and services",
			Unit:        "%",
			Color:       "#667eea",
			Data:        sigmoidSeries(currentYear, endYear, 3, v.aiRevenuePeak, v.agiYear),
		},
		{
			ID:          "unemployment-rate",
			Name:        "Unemployment Rate",
			Description: "The percentage of the workforce unable to find employment",
			Unit:        "%",
			Color:       "#f87171",
			Data:        sigmoidSeries(currentYear, endYear, 4, v.unemploymentPeak, v.agiYear),
		},
		{
			ID:          "automation-level",
			Name:        "Job Automation Level",
			Description: "The percentage of current jobs that have been fully automated by AI systems",
			Unit:        "%",
			Color:       "#34d399",
			Data:        sigmoidSeries(currentYear, endYear, 15, v.automationLevel, v.agiYear),
		},
	}
}

// sigmoidSeries generates a yearly series following a logistic curve with
// its inflection at the AGI year, rounded to one decimal.
func sigmoidSeries(startYear, endYear int, startValue, endValue float64, inflectionYear int) []models.DataPoint {
	totalYears := endYear - startYear
	if totalYears <= 0 {
		return []models.DataPoint{{Date: fmt.Sprintf("%d-01-01", startYear), Value: startValue}}
	}

	const steepness = 10.0
	inflectionProgress := float64(inflectionYear-startYear) / float64(totalYears)

	data := make([]models.DataPoint, 0, totalYears+1)
	for year := startYear; year <= endYear; year++ {
		progress := float64(year-startYear) / float64(totalYears)
		x := (progress - inflectionProgress) * steepness
		sigmoid := 1.0 / (1.0 + math.Exp(-x))
		value := startValue + (endValue-startValue)*sigmoid

		data = append(data, models.DataPoint{
			Date:  fmt.Sprintf("%d-01-01", year),
			Value: math.Round(value*10) / 10,
		})
	}
	return data
}

func forecastAssumptions(v answerValues) []models.Assumption {
	techDesc := "AGI development faces technical constraints that slow advancement"
	techImpact := models.LevelHigh
	if v.devSpeed >= 4 {
		techDesc = "AGI development proceeds rapidly with recursive self-improvement"
		techImpact = models.LevelCritical
	} else if v.devSpeed >= 3 {
		techDesc = "AGI development follows current trajectory of steady progress"
	}

	alignDesc := "AI alignment techniques advance sufficiently to ensure safe systems"
	alignConf := models.LevelMedium
	if v.alignmentConcern >= 7 {
		alignDesc = "AI alignment proves extremely challenging, with frequent misalignment incidents"
		alignConf = models.LevelLow
	} else if v.alignmentConcern >= 4 {
		alignDesc = "AI alignment challenges are significant but manageable with careful research"
	}

	controlDesc := "AI systems increasingly operate beyond human control and oversight"
	controlConf := models.LevelLow
	if v.controlConf >= 7 {
		controlDesc = "Humans maintain robust control mechanisms over advanced AI systems"
		controlConf = models.LevelMedium
	} else if v.controlConf >= 4 {
		controlDesc = "Control over AI systems remains contested but generally maintained"
		controlConf = models.LevelMedium
	}

	econDesc := "Economic transitions create winners and losers with mixed overall outcomes"
	if v.outlook >= 4 {
		econDesc = "Economic systems successfully adapt to provide prosperity despite automation"
	} else if v.outlook <= 2 {
		econDesc = "Economic disruption leads to severe inequality and social strain"
	}

	geoDesc := "Mix of cooperation and competition shapes AI development"
	geoConf := models.LevelMedium
	if v.outlook >= 4 {
		geoDesc = "International cooperation on AI safety proves effective"
	} else if v.outlook <= 2 {
		geoDesc = "Competitive dynamics undermine AI safety efforts"
	}
	if v.outlook == 3 {
		geoConf = models.LevelLow
	}

	return []models.Assumption{
		{ID: "assumption-1", Category: "technical", Description: techDesc, Confidence: models.LevelMedium, Impact: techImpact},
		{ID: "assumption-2", Category: "technical", Description: alignDesc, Confidence: alignConf, Impact: models.LevelCritical},
		{ID: "assumption-3", Category: "strategic", Description: controlDesc, Confidence: controlConf, Impact: models.LevelCritical},
		{ID: "assumption-4", Category: "economic", Description: econDesc, Confidence: models.LevelMedium, Impact: models.LevelHigh},
		{ID: "assumption-5", Category: "geopolitical", Description: geoDesc, Confidence: geoConf, Impact: models.LevelHigh},
	}
}

func forecastOutcome(v answerValues) models.ScenarioOutcome {
	var alignment models.AlignmentStatus
	switch {
	case v.alignmentConcern <= 3:
		alignment = models.Aligned
	case v.alignmentConcern <= 6:
		alignment = models.AlignmentPartial
	case v.alignmentConcern <= 8:
		alignment = models.AlignmentUncertain
	default:
		alignment = models.Misaligned
	}

	var control models.ControlStatus
	switch {
	case v.controlConf >= 7:
		control = models.Controlled
	case v.controlConf >= 4:
		control = models.ControlPartial
	case v.controlConf >= 2:
		control = models.ControlUncertain
	default:
		control = models.Uncontrolled
	}

	var human models.HumanOutcome
	var description string
	switch {
	case v.outlook >= 5:
		human = models.OutcomeExtremelyGood
		description = "AI systems prove to be tremendously beneficial, enabling solutions to humanity's greatest " +
			"challenges while maintaining human agency and flourishing."
	case v.outlook >= 4:
		human = models.OutcomeGood
		description = "AI development proceeds largely beneficially, with manageable risks and substantial " +
			"improvements in human welfare and capability."
	case v.outlook == 3:
		human = models.OutcomeNeutral
		description = "AI transformation brings both significant benefits and serious challenges. Overall human " +
			"welfare remains stable but highly uneven across populations."
	case v.outlook == 2:
		human = models.OutcomeBad
		description = "AI development creates severe disruption and risk. While human civilization persists, " +
			"inequality increases dramatically and many face hardship."
	default:
		if v.alignmentConcern >= 9 && v.controlConf <= 3 {
			human = models.OutcomeExtinction
			description = "Severe alignment failures combined with loss of control lead to catastrophic outcomes " +
				"for humanity."
		} else {
			human = models.OutcomeExtremelyBad
			description = "AI systems cause widespread harm through misalignment or misuse. Human autonomy and " +
				"welfare are severely compromised."
		}
	}

	return models.ScenarioOutcome{
		AlignmentStatus: alignment,
		ControlStatus:   control,
		HumanOutcome:    human,
		Description:     description,
	}
}
