package bundle

import (
	"bytes"
	"html/template"

	atbs "github.com/Fawaz-I/automate-the-boring-stuff"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang='en'>
<head>
  <meta charset='utf-8'>
  <meta name='viewport' content='width=device-width, initial-scale=1'>
  <title>Automate the Boring Stuff Offline</title>
  <style>
    :root { --bg:#f6f5ef; --panel:#fffdf7; --ink:#1e2430; --muted:#5d6472; --line:#ddd4c6; --accent:#0e7a6d; }
    body{margin:0;padding:2rem;font:16px/1.45 Georgia, 'Times New Roman', serif;background:linear-gradient(180deg,#f8f5ec,#eef3f5);color:var(--ink);}
    .wrap{max-width:920px;margin:0 auto;background:var(--panel);border:1px solid var(--line);border-radius:14px;padding:1.5rem 1.25rem;box-shadow:0 12px 28px rgba(0,0,0,.06);}
    h1{margin:.2rem 0 .4rem;font-size:1.6rem;text-align:center;}
    p{color:var(--muted);margin:.2rem 0 1rem;text-align:center;}
    .offline-text{display:inline-block;background:linear-gradient(90deg,#0b6d62,#129488,#0b6d62);background-size:200% auto;color:transparent;-webkit-background-clip:text;background-clip:text;text-shadow:0 0 12px rgba(18,148,136,.24);animation:offlineWave 3.6s linear infinite;}
    @keyframes offlineWave{0%{background-position:0% 50%}100%{background-position:200% 50%}}
    h2{margin:1.2rem 0 .6rem;font-size:1.15rem;border-top:1px solid var(--line);padding-top:.9rem;}
    ul{list-style:none;padding:0;margin:0;display:grid;gap:.5rem;}
    li{display:grid;grid-template-columns:1fr 1fr;gap:.6rem;padding:.55rem;border:1px solid #ebe4d8;border-radius:10px;background:#fffcf6;}
    a{display:block;text-decoration:none;padding:.48rem .58rem;border-radius:8px;background:#f2fbf8;color:#075449;border:1px solid #cde6df;}
    a:hover{background:#e6f6f2;}
    .ref{display:flex;flex-wrap:wrap;gap:.55rem;}
    .promo{margin-top:.9rem;padding:.85rem;border:1px solid #e1dbce;border-radius:10px;background:#fefaf1;}
    .promo p{margin:.35rem 0 .5rem;}
    .promo-links{display:flex;flex-wrap:wrap;gap:.5rem;}
    @media (max-width:740px){body{padding:1rem}li{grid-template-columns:1fr}}
  </style>
</head>
<body>
  <main class='wrap'>
    <h1>Automate the Boring Stuff <span class='offline-text'>Offline</span></h1>
    <p>Read each main-book chapter, then jump directly to the matching workbook chapter.</p>
    <h2>Introductions</h2>
    <ul>
      <li><a href='book/chapter0.html'>Book Introduction</a><a href='workbook/introduction.html'>Workbook Introduction</a></li>
    </ul>
    <h2>Chapter Pairs</h2>
    <ul>
{{- range .}}
      <li><a href='book/chapter{{.Number}}.html'>Book Chapter {{.Number}}</a><a href='workbook/chapter{{.Number}}.html'>Workbook Chapter {{.Number}}</a></li>
{{- end}}
    </ul>
    <h2>Reference</h2>
    <div class='ref'>
      <a href='book/appendixa.html'>Book Appendix A</a>
      <a href='book/appendixb.html'>Book Appendix B</a>
      <a href='workbook/answers.html'>Workbook Answers</a>
    </div>
    <div class='promo'>
      <p><strong>More from Al Sweigart</strong>:</p>
      <div class='promo-links'>
        <a href='https://inventwithpython.com'>Free online books hub</a>
        <a href='https://nostarch.com/automate-boring-stuff-python-3rd-edition'>Automate book page</a>
        <a href='https://inventwithpython.com/automateudemy'>Automate video course</a>
      </div>
    </div>
  </main>
</body>
</html>`))

// RenderIndex renders the bundle's contents page: introductions, one row
// per book/workbook chapter pair, then reference pages.
// All links are relative to the bundle root.
func RenderIndex(chapters []atbs.Chapter) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, chapters); err != nil {
		return nil, atbs.Errorf(atbs.EINTERNAL, "render index: %v", err)
	}
	return buf.Bytes(), nil
}
