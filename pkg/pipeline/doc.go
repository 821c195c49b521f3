/*
Package pipeline drives a pagerc run over one site.

	+-------------+
	|  Pipeline   |
	|  (Driver)   |
	+------+------+
	       |
	+------+------+------+------+
	|   Rewrite   |   Extract   |
	|    (nav)    |   (meta)    |
	+------+------+------+------+
	       |
	+------+------+
	|    Build    |
	|  (archive)  |
	+-------------+

🎯 Purpose:
- Enumerates the article files of a site
- Rewrites each article so it carries exactly one current nav fragment
- Collects article records and renders archive.html and archive.json

🔄 Flow:
1. Enumerate lists articles_dir, keeping include matches that no exclude matches
2. Each article is read, rewritten and written back when its content changed
3. The record is extracted from the article as it now is on disk
4. Records are sorted newest first and both artifacts are written

⚡ Key Responsibilities:
- Sequencing the per-file steps in enumeration order
- Dry runs (Check) that compute everything and write nothing
- Wrapping unrecoverable I/O errors with the file they concern

🤝 Interfaces:
- Store: file access and status tracking, satisfied by status.Manager
- log.Logger: console progress lines
- config.Config: directories, patterns and extraction settings

📝 Design Philosophy:
The pipeline owns ordering and nothing else. Page transforms live in nav,
metadata in meta, rendering in archive and file I/O in status, so each can be
tested on plain strings and the pipeline tests only need a temp directory.
*/
package pipeline
