package main

// These constants hold the "long" description of a subcommand. These get printed when running `--help`, for example.
const (
	descriptionProjectRun = `'projectrun' runs one of the project's shell scripts and reports its outcome.

The script is selected through the PROJECT_RUN environment variable (or the first positional argument) and
is looked up as <script-directory>/<name>.sh, relative to the current working directory. Its output is
captured and printed once the script finished. projectrun exits with the exit code of the script.

Example use:

	PROJECT_RUN=build_daily projectrun

	projectrun --script-directory scripts build_daily`

	descriptionList = `'projectrun list' prints the names of all scripts in the script directory, including scripts in
nested directories.

Example use:

	projectrun list --script-directory scripts`
)
