package http

import (
	"html/template"
	"net/http"

	"github.com/fwojciec/assessrec"
)

// indexView is the data rendered into the index template.
type indexView struct {
	Mode  string
	Query string
	URL   string

	Info    string
	Warning string

	Results     []assessrec.Recommendation
	RawJSON     string
	DownloadURL string
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

func render(w http.ResponseWriter, view indexView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, view)
}

// The visible table links each assessment name to its canonical URL
// and deliberately omits the URL and score columns; the ranker's
// ordering is preserved as-is.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SHL Assessment Recommendation System</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
textarea, input[type=url] { width: 100%; box-sizing: border-box; }
.warning { background: #fff3cd; border: 1px solid #ffe69c; padding: 0.6rem; }
.info { background: #cfe2ff; border: 1px solid #9ec5fe; padding: 0.6rem; }
pre { background: #f5f5f5; padding: 0.6rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>SHL Assessment Recommendation System</h1>
<p>Enter a job description or URL, and get the top SHL assessment recommendations.</p>

<form method="post" action="/">
<p>
<label><input type="radio" name="mode" value="text"{{if ne .Mode "url"}} checked{{end}}> Text</label>
<label><input type="radio" name="mode" value="url"{{if eq .Mode "url"}} checked{{end}}> URL</label>
</p>
<p><textarea name="query" rows="6" placeholder="Enter job description or query">{{.Query}}</textarea></p>
<p><input type="url" name="url" value="{{.URL}}" placeholder="Enter job description URL"></p>
<p><button type="submit">Recommend</button></p>
</form>

{{if .Warning}}<p class="warning">{{.Warning}}</p>{{end}}
{{if .Info}}<p class="info">{{.Info}}</p>{{end}}

{{if .Results}}
<h2>Recommendations</h2>
<table>
<tr><th>Assessment Name</th><th>Remote Testing Support</th><th>Adaptive/IRT Support</th></tr>
{{range .Results}}
<tr>
<td><a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a></td>
<td>{{if .RemoteTesting}}Yes{{else}}No{{end}}</td>
<td>{{if .AdaptiveIRT}}Yes{{else}}No{{end}}</td>
</tr>
{{end}}
</table>

<p><a href="{{.DownloadURL}}" download="recommendations.json">Download recommendations.json</a></p>

<h2>Raw data</h2>
<pre>{{.RawJSON}}</pre>
{{end}}
</body>
</html>
`
