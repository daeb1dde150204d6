package report

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdown converts an authored markdown block to HTML for
// embedding in a section body.
func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(src), p, renderer))
}

// Narrative blocks of the report, in document order. These are
// presentation content: the analysis does not depend on their wording.

const methodologyMD = `
This analysis follows a structured data workflow to explore and interpret the heart disease dataset.

#### A. Data Understanding
- Reviewed dataset structure through previews, column type summaries and descriptive statistics.
- Identified key features such as ` + "`age`, `sex`, `cp`, `trestbps`, `chol`, `fbs` and `target`" + `.

#### B. Data Preprocessing
- Mapped categorical codes (` + "`sex`, `fbs`, `target`" + `) to human-readable labels, exactly once per column.

#### C. Exploratory Data Analysis
- Used bar charts, histograms and density curves to identify distributions.
- Compared chest pain types, fasting blood sugar and blood pressure by gender and heart disease status.

#### D. Insights
- Ranked features by their relationship to heart disease and summarized findings into digestible insights.

#### E. Communication
- Combined data, charts and narrative into one served report, organized as analysis, insights and recommendations.
`

const introductionMD = `
Heart disease is the leading cause of death globally. Using real patient
data, we explore the key risk factors that contribute to heart disease,
and how proactive prevention can save lives.
`

const affectedMD = `
- **Gender**: Males show a significantly higher rate of heart disease than females.
- **Age**: Risk increases with age, especially beyond 60.

> **Insight**: Men aged 55 to 60 were the high-risk group.
`

const chestPainMD = `
- **Non-anginal** individuals (chest pain not related to the heart) had the **highest rate** of heart disease.

> **Insight**: People without symptoms may still be at serious risk.
`

const fbsMD = `
- Fasting blood sugar ≤ 120 mg/dL dominates this dataset.

> **Insight**: Blood sugar remains important for overall cardiovascular health, especially in diabetic patients.
`

const bloodPressureMD = `
- High resting blood pressure (> 120 mm Hg) is more common among heart disease patients.

> **Insight**: Target a resting blood pressure near **120/80 mm Hg** for prevention.
`

const preventionMD = `
To reduce the risk of heart disease, these preventive actions are highly recommended:

1. **Routine screenings** — even when asymptomatic, regular checkups can detect early warning signs.
2. **Monitor blood pressure** — maintain a target of around **120/80 mm Hg**.
3. **Heart-healthy lifestyle** — eat a balanced diet, stay active, avoid smoking and reduce stress.
4. **Evaluate chest pain promptly** — even mild or unusual discomfort should not be ignored.
5. **Manage risk factors together** — address blood pressure, cholesterol and blood sugar as one lifestyle plan rather than in isolation.
`

const conclusionMD = `
Heart disease does not always present with loud symptoms. Many patients,
especially older males, can appear asymptomatic yet still be at high
risk. This analysis shows the importance of early detection, lifestyle
management and regular health screenings. Prevention is about staying
one step ahead.
`

// riskFactorRows is the fixed risk-association ranking table.
var riskFactorRows = [][]string{
	{"Age around 60", "Strongest red flag"},
	{"Non-anginal chest pain", "Higher prevalence of disease"},
	{"Male gender", "More affected overall"},
	{"Resting blood pressure", "Consistently elevated among patients"},
	{"Fasting blood sugar", "Secondary signal"},
}
