package rendering

// defaultTemplate is the built-in single-page resume layout, used when no
// template path is configured.
const defaultTemplate = `\documentclass[10pt]{article}
\usepackage[margin=1.5cm]{geometry}
\usepackage[utf8]{inputenc}
\pagestyle{empty}
\setlength{\parindent}{0pt}

\begin{document}

{\LARGE \textbf{ {{- escape .Name -}} }}\\[2pt]
{{escape .ContactLine}}

{{if .Experience}}\section*{Experience}
{{range .Experience}}\textbf{ {{- escape .Title -}} } --- {{escape .Company}}{{if .Period}} \hfill {{escape .Period}}{{end}}\\
{{range .Highlights}}\quad$\bullet$ {{escape .}}\\
{{end}}{{end}}{{end}}
{{if .Education}}\section*{Education}
{{range .Education}}\textbf{ {{- escape .Degree -}} }, {{escape .Institution}}{{if .FieldOfStudy}} --- {{escape .FieldOfStudy}}{{end}}{{if .Period}} \hfill {{escape .Period}}{{end}}\\
{{end}}{{end}}
{{if .Certifications}}\section*{Certifications}
{{range .Certifications}}{{escape .Name}}{{if .Issuer}} ({{escape .Issuer}}){{end}}\\
{{end}}{{end}}
{{if .Skills}}\section*{Technical Skills}
{{if .Skills.ProgrammingLanguages}}\textbf{Languages:} {{escape (join .Skills.ProgrammingLanguages)}}\\
{{end}}{{if .Skills.ToolsAndTechnologies}}\textbf{Tools:} {{escape (join .Skills.ToolsAndTechnologies)}}\\
{{end}}{{end}}
{{if .Languages}}\section*{Languages}
{{range .Languages}}{{escape .Name}}{{if .Proficiency}} ({{escape .Proficiency}}){{end}}\\
{{end}}{{end}}

\end{document}
`
