package intake

import "tasmeem/internal/i18n"

var stepTitles = []i18n.Text{
	{En: "Basic Info", Ar: "المعلومات الأساسية"},
	{En: "Project Type", Ar: "نوع المشروع"},
	{En: "Details", Ar: "التفاصيل"},
	{En: "Questions", Ar: "الأسئلة"},
	{En: "Images", Ar: "الصور"},
}

type ProgressStep struct {
	Number int
	Title  i18n.Text
	Done   bool
	Active bool
}

type Progress struct {
	Current int
	Total   int
	Percent int
	Steps   []ProgressStep
}

func NewProgress(current Step) Progress {
	c := int(current)
	if c < 1 {
		c = 1
	}
	if c > TotalSteps {
		c = TotalSteps
	}

	p := Progress{
		Current: c,
		Total:   TotalSteps,
		Percent: (c - 1) * 100 / (TotalSteps - 1),
		Steps:   make([]ProgressStep, 0, TotalSteps),
	}
	for i, title := range stepTitles {
		n := i + 1
		p.Steps = append(p.Steps, ProgressStep{
			Number: n,
			Title:  title,
			Done:   n < c,
			Active: n == c,
		})
	}
	return p
}
