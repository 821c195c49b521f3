/*
Package status manages file storage and status tracking for pagerc.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Summary |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads and writes article pages and archive artifacts
- Compares new content against what is on disk
- Tracks per-file status for the run summary and dry runs

🔄 Flow:
1. The pipeline hands over rewritten pages and rendered artifacts
2. Compare decides whether the file is new, modified or unchanged
3. Changed files are written through a temp file and a rename
4. TrackFile records the outcome for the summary

🤝 Interfaces:
- FileManager: Handles file operations
- StatusReporter: Records file status
- FileFormatter: Formats status messages

🔍 Example:

	mgr := status.New(root, &logger)

	st, err := mgr.Compare(ctx, "archive.html", html)
	if st.Changed() {
		err = mgr.WriteFile(ctx, "archive.html", html)
	}
	mgr.TrackFile(ctx, "archive.html", status.FileInfo{Kind: "archive", Status: st})
*/
package status
