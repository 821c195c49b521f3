/*
Package config manages configuration parsing and validation for pagerc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |                       |
	+-----+-----+ +---+-----+           +----+----+
	|   YAML    | |  JSON   |           |   HCL   |
	| Parser    | | Parser  |           | Parser  |
	+-----------+ +---------+           +---------+

🎯 Purpose:
- Locates the article directory and the two archive artifacts
- Carries the publication settings used for metadata (base URL, brand)
- Holds site-wide replacements applied while pages are rewritten

🔄 Flow:
1. Starts from Defaults
2. Decodes the file over the defaults with the parser picked by extension
3. Validates and normalizes paths, patterns and replacements

A missing .pagerc.yaml is not an error; the defaults describe the original
site layout.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".pagerc.yaml")
	if err != nil {
		return err
	}

	rules := cfg.ReplacementRules()
*/
package config
