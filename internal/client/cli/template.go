package cli

const usageTemplate = `
NeoAstrology Client

Usage:
  neoastro [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   Server URL (default: http://localhost:8001)
  --db PATH      Path to local database (default: neoastro.db)

Commands:
  register                 Register new user
  login                    Login to server
  logout                   Logout and delete local session
  status                   Show session and subscription status
  chart list               List your natal charts
  chart create             Create a new natal chart (interactive)
  chart get <id> [section] Show chart details (planets, houses, aspects, interpretation)
  chart delete <id>        Delete a natal chart
  horoscope                Daily horoscope for your sun sign

Examples:
  neoastro register
  neoastro login
  neoastro chart create
  neoastro chart get b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 aspects
  neoastro chart get b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 --svg chart.svg
  neoastro horoscope --sign leo --date 2026-01-15
  neoastro horoscope --all
  neoastro --server https://api.example.com login
`

const chartListTemplate = `
=== Natal Charts ===

{{- if eq (len .) 0 }}
No charts found.

Use 'neoastro chart create' to build your first natal chart.

{{ else }}
Found {{len .}} chart(s):

{{- range . }}
- {{ .Name }}{{ if .IsPrimary }} (primary){{ end }}
   ID:    {{ .ID }}
   Born:  {{ .BirthDate.Format "2006-01-02" }} {{ .BirthTime }}
   Place: {{ .BirthCity }}, {{ .BirthCountry }}

{{- end }}
Use 'neoastro chart get <id>' to view planets, houses and aspects.
{{- end }}
`

const chartHeaderTemplate = `
=== {{ .Name }} ===

ID:       {{ .ID }}
Born:     {{ .BirthDate.Format "2006-01-02" }} {{ .BirthTime }} ({{ .BirthTimezone }})
Place:    {{ .BirthCity }}, {{ .BirthCountry }} ({{ printf "%.4f" .BirthLatitude }}, {{ printf "%.4f" .BirthLongitude }})
{{- if .IsPrimary }}
Primary:  yes
{{- end }}

`

const chartPlanetsTemplate = `Planets:
{{ range $name, $p := .Planets }}  {{ printf "%-10s" $name }} {{ printf "%-12s" $p.Sign }} {{ printf "%6.2f" $p.Position }}°  house {{ $p.House }}{{ if $p.Retrograde }}  (R){{ end }}
{{ end }}`

const chartHousesTemplate = `Houses:
{{ range .Houses }}  {{ printf "%2d" .House }}. {{ printf "%-12s" .Sign }} {{ printf "%6.2f" .Position }}°
{{ end }}`

const chartAspectsTemplate = `Aspects:
{{- if eq (len .Aspects) 0 }}
  No aspects calculated.
{{ else }}
{{ range .Aspects }}  {{ printf "%-10s" .Planet1 }} {{ printf "%-12s" .Aspect }} {{ printf "%-10s" .Planet2 }} orb {{ printf "%.2f" .Orb }}°{{ if .Applying }}  (applying){{ end }}
{{ end }}
{{- end }}`

const chartInterpretationTemplate = `Interpretation:
{{- if .InterpretationText }}

{{ .InterpretationText }}
{{ else }}
  No interpretation available for this chart.
{{ end }}`

const horoscopeTemplate = `
=== Daily Horoscope: {{ .Sign }} ===
{{ .Date.Format "2006-01-02" }}

{{ .ContentText }}

{{- if .Mood }}
Mood:         {{ .Mood }}
{{- end }}
{{- if .LuckyColor }}
Lucky color:  {{ .LuckyColor }}
{{- end }}
{{- if .LuckyNumber }}
Lucky number: {{ .LuckyNumber }}
{{- end }}
{{- if .Keywords }}
Keywords:     {{ range $i, $k := .Keywords }}{{ if $i }}, {{ end }}{{ $k }}{{ end }}
{{- end }}
`

const horoscopeListTemplate = `
=== Daily Horoscopes ===

{{- range . }}
{{ .Sign }} ({{ .Date.Format "2006-01-02" }}):
  {{ .ContentText }}
{{ end }}
`
