/*
Package css holds typed CSS values which render to style properties.

Values are option types in the manner of ML-style sum types: a dimension is
either a keyword (auto, inherit, initial), a fixed length, a relative length
or a content-dependent size.

    w := css.Percentage(50)
    n := html.Div(html.Dimen(style.Width, w))   // style="width: 50%"

Every value converts to a style.Property and may therefore be used with
Node.WithStyle and stylesheet rules. Property values may be read back with
ParseDimen, Position and ParseDisplay.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css
