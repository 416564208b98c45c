package html

import (
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/mongrel"
)

// Tag creates an element for an atom and applies modifiers to it.
// Tags without a constructor function of their own may be created with Tag,
// e.g. Tag(atom.Option, Value("1")).
func Tag(a atom.Atom, mods ...Modifier) mongrel.Node {
	return Apply(mongrel.New(a.String()), mods...)
}

// Element creates an element for an arbitrary tag name and applies
// modifiers to it. Used for tags unknown to package atom, such as custom elements.
func Element(tag string, mods ...Modifier) mongrel.Node {
	return Apply(mongrel.New(tag), mods...)
}

// Heading creates an element <h1>…<h6>. level is clamped to 1…6.
func Heading(level int, mods ...Modifier) mongrel.Node {
	headings := [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return Tag(headings[level-1], mods...)
}

// A creates an element <a>.
func A(mods ...Modifier) mongrel.Node { return Tag(atom.A, mods...) }

// Abbr creates an element <abbr>.
func Abbr(mods ...Modifier) mongrel.Node { return Tag(atom.Abbr, mods...) }

// Address creates an element <address>.
func Address(mods ...Modifier) mongrel.Node { return Tag(atom.Address, mods...) }

// Article creates an element <article>.
func Article(mods ...Modifier) mongrel.Node { return Tag(atom.Article, mods...) }

// Aside creates an element <aside>.
func Aside(mods ...Modifier) mongrel.Node { return Tag(atom.Aside, mods...) }

// Audio creates an element <audio>.
func Audio(mods ...Modifier) mongrel.Node { return Tag(atom.Audio, mods...) }

// B creates an element <b>.
func B(mods ...Modifier) mongrel.Node { return Tag(atom.B, mods...) }

// Blockquote creates an element <blockquote>.
func Blockquote(mods ...Modifier) mongrel.Node { return Tag(atom.Blockquote, mods...) }

// Br creates an element <br>.
func Br(mods ...Modifier) mongrel.Node { return Tag(atom.Br, mods...) }

// Button creates an element <button>.
func Button(mods ...Modifier) mongrel.Node { return Tag(atom.Button, mods...) }

// Canvas creates an element <canvas>.
func Canvas(mods ...Modifier) mongrel.Node { return Tag(atom.Canvas, mods...) }

// Caption creates an element <caption>.
func Caption(mods ...Modifier) mongrel.Node { return Tag(atom.Caption, mods...) }

// Code creates an element <code>.
func Code(mods ...Modifier) mongrel.Node { return Tag(atom.Code, mods...) }

// Col creates an element <col>.
func Col(mods ...Modifier) mongrel.Node { return Tag(atom.Col, mods...) }

// Colgroup creates an element <colgroup>.
func Colgroup(mods ...Modifier) mongrel.Node { return Tag(atom.Colgroup, mods...) }

// Dd creates an element <dd>.
func Dd(mods ...Modifier) mongrel.Node { return Tag(atom.Dd, mods...) }

// Details creates an element <details>.
func Details(mods ...Modifier) mongrel.Node { return Tag(atom.Details, mods...) }

// Div creates an element <div>.
func Div(mods ...Modifier) mongrel.Node { return Tag(atom.Div, mods...) }

// Dl creates an element <dl>.
func Dl(mods ...Modifier) mongrel.Node { return Tag(atom.Dl, mods...) }

// Dt creates an element <dt>.
func Dt(mods ...Modifier) mongrel.Node { return Tag(atom.Dt, mods...) }

// Em creates an element <em>.
func Em(mods ...Modifier) mongrel.Node { return Tag(atom.Em, mods...) }

// Fieldset creates an element <fieldset>.
func Fieldset(mods ...Modifier) mongrel.Node { return Tag(atom.Fieldset, mods...) }

// Figcaption creates an element <figcaption>.
func Figcaption(mods ...Modifier) mongrel.Node { return Tag(atom.Figcaption, mods...) }

// Figure creates an element <figure>.
func Figure(mods ...Modifier) mongrel.Node { return Tag(atom.Figure, mods...) }

// Footer creates an element <footer>.
func Footer(mods ...Modifier) mongrel.Node { return Tag(atom.Footer, mods...) }

// Form creates an element <form>.
func Form(mods ...Modifier) mongrel.Node { return Tag(atom.Form, mods...) }

// H1 creates an element <h1>.
func H1(mods ...Modifier) mongrel.Node { return Tag(atom.H1, mods...) }

// H2 creates an element <h2>.
func H2(mods ...Modifier) mongrel.Node { return Tag(atom.H2, mods...) }

// H3 creates an element <h3>.
func H3(mods ...Modifier) mongrel.Node { return Tag(atom.H3, mods...) }

// H4 creates an element <h4>.
func H4(mods ...Modifier) mongrel.Node { return Tag(atom.H4, mods...) }

// H5 creates an element <h5>.
func H5(mods ...Modifier) mongrel.Node { return Tag(atom.H5, mods...) }

// H6 creates an element <h6>.
func H6(mods ...Modifier) mongrel.Node { return Tag(atom.H6, mods...) }

// Header creates an element <header>.
func Header(mods ...Modifier) mongrel.Node { return Tag(atom.Header, mods...) }

// Hr creates an element <hr>.
func Hr(mods ...Modifier) mongrel.Node { return Tag(atom.Hr, mods...) }

// I creates an element <i>.
func I(mods ...Modifier) mongrel.Node { return Tag(atom.I, mods...) }

// Iframe creates an element <iframe>.
func Iframe(mods ...Modifier) mongrel.Node { return Tag(atom.Iframe, mods...) }

// Img creates an element <img>.
func Img(mods ...Modifier) mongrel.Node { return Tag(atom.Img, mods...) }

// Input creates an element <input>.
func Input(mods ...Modifier) mongrel.Node { return Tag(atom.Input, mods...) }

// Label creates an element <label>.
func Label(mods ...Modifier) mongrel.Node { return Tag(atom.Label, mods...) }

// Legend creates an element <legend>.
func Legend(mods ...Modifier) mongrel.Node { return Tag(atom.Legend, mods...) }

// Li creates an element <li>.
func Li(mods ...Modifier) mongrel.Node { return Tag(atom.Li, mods...) }

// Link creates an element <link>.
func Link(mods ...Modifier) mongrel.Node { return Tag(atom.Link, mods...) }

// Main creates an element <main>.
func Main(mods ...Modifier) mongrel.Node { return Tag(atom.Main, mods...) }

// Nav creates an element <nav>.
func Nav(mods ...Modifier) mongrel.Node { return Tag(atom.Nav, mods...) }

// Ol creates an element <ol>.
func Ol(mods ...Modifier) mongrel.Node { return Tag(atom.Ol, mods...) }

// P creates an element <p>.
func P(mods ...Modifier) mongrel.Node { return Tag(atom.P, mods...) }

// Pre creates an element <pre>.
func Pre(mods ...Modifier) mongrel.Node { return Tag(atom.Pre, mods...) }

// Script creates an element <script>.
func Script(mods ...Modifier) mongrel.Node { return Tag(atom.Script, mods...) }

// Section creates an element <section>.
func Section(mods ...Modifier) mongrel.Node { return Tag(atom.Section, mods...) }

// Select creates an element <select>.
func Select(mods ...Modifier) mongrel.Node { return Tag(atom.Select, mods...) }

// Small creates an element <small>.
func Small(mods ...Modifier) mongrel.Node { return Tag(atom.Small, mods...) }

// Source creates an element <source>.
func Source(mods ...Modifier) mongrel.Node { return Tag(atom.Source, mods...) }

// Span creates an element <span>.
func Span(mods ...Modifier) mongrel.Node { return Tag(atom.Span, mods...) }

// Strong creates an element <strong>.
func Strong(mods ...Modifier) mongrel.Node { return Tag(atom.Strong, mods...) }

// Summary creates an element <summary>.
func Summary(mods ...Modifier) mongrel.Node { return Tag(atom.Summary, mods...) }

// Table creates an element <table>.
func Table(mods ...Modifier) mongrel.Node { return Tag(atom.Table, mods...) }

// Tbody creates an element <tbody>.
func Tbody(mods ...Modifier) mongrel.Node { return Tag(atom.Tbody, mods...) }

// Td creates an element <td>.
func Td(mods ...Modifier) mongrel.Node { return Tag(atom.Td, mods...) }

// Template creates an element <template>.
func Template(mods ...Modifier) mongrel.Node { return Tag(atom.Template, mods...) }

// Textarea creates an element <textarea>.
func Textarea(mods ...Modifier) mongrel.Node { return Tag(atom.Textarea, mods...) }

// Tfoot creates an element <tfoot>.
func Tfoot(mods ...Modifier) mongrel.Node { return Tag(atom.Tfoot, mods...) }

// Th creates an element <th>.
func Th(mods ...Modifier) mongrel.Node { return Tag(atom.Th, mods...) }

// Thead creates an element <thead>.
func Thead(mods ...Modifier) mongrel.Node { return Tag(atom.Thead, mods...) }

// Tr creates an element <tr>.
func Tr(mods ...Modifier) mongrel.Node { return Tag(atom.Tr, mods...) }

// Ul creates an element <ul>.
func Ul(mods ...Modifier) mongrel.Node { return Tag(atom.Ul, mods...) }

// Video creates an element <video>.
func Video(mods ...Modifier) mongrel.Node { return Tag(atom.Video, mods...) }
