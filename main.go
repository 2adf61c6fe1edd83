package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/m-manu/sftpclone/config"
	"github.com/m-manu/sftpclone/fmte"
	"github.com/m-manu/sftpclone/remote"
	flag "github.com/spf13/pflag"
)

// Constants indicating return codes of this tool, when run from command line
const (
	exitCodeSuccess = iota
	exitCodeInvalidNumArgs
	exitCodeInvalidArgs
	exitCodeLocalDirError
	exitCodeExclusionFilesError
	exitCodeConnectionError
	exitCodeSyncError
	exitCodeConfigError
)

var flags struct {
	isHelp                  func() bool
	getKeyPath              func() (string, bool)
	getLogLevel             func() fmte.Level
	getPort                 func() (int, bool)
	isFixSymlinks           func() bool
	getSSHConfigPath        func() string
	getExcludeFrom          func() string
	getKnownHostsPath       func() string
	isInsecureIgnoreHostKey func() bool
	isDryRun                func() bool
}

func setupHelpOpt() {
	helpPtr := flag.BoolP("help", "h", false, "display help")
	flags.isHelp = func() bool {
		return *helpPtr
	}
}

func setupKeyOpt(cfg *config.Config) {
	keyPtr := flag.StringP("key", "k", cfg.KeyPath, "private key identity (when given, wins over IdentityFile in ssh_config)")
	flags.getKeyPath = func() (string, bool) {
		return *keyPtr, cfg.KeySet || flag.CommandLine.Changed("key")
	}
}

func setupLoggingOpt(cfg *config.Config) {
	levelPtr := flag.StringP("logging", "l", cfg.LogLevel,
		fmt.Sprintf("set logging level (one of %s)", strings.Join(fmte.LevelNames(), ", ")))
	flags.getLogLevel = func() fmte.Level {
		level, err := fmte.ParseLevel(*levelPtr)
		if err != nil {
			fmte.PrintfErr("error: %v\n", err)
			flag.Usage()
			os.Exit(exitCodeInvalidArgs)
		}
		return level
	}
}

func setupPortOpt(cfg *config.Config) {
	portPtr := flag.IntP("port", "p", cfg.Port, "SSH remote port (when given, wins over Port in ssh_config)")
	flags.getPort = func() (int, bool) {
		if *portPtr <= 0 || *portPtr > 65535 {
			fmte.PrintfErr("error: port %d out of range\n", *portPtr)
			flag.Usage()
			os.Exit(exitCodeInvalidArgs)
		}
		return *portPtr, cfg.PortSet || flag.CommandLine.Changed("port")
	}
}

func setupFixSymlinksOpt(cfg *config.Config) {
	fixPtr := flag.BoolP("fix-symlinks", "f", cfg.FixSymlinks,
		"fix symbolic links on remote side (absolute links inside the local tree are repointed at the remote tree)")
	flags.isFixSymlinks = func() bool {
		return *fixPtr
	}
}

func setupSSHConfigOpt(cfg *config.Config) {
	sshConfigPtr := flag.StringP("ssh-config", "c", cfg.SSHConfigPath, "path to the ssh-configuration file")
	flags.getSSHConfigPath = func() string {
		return *sshConfigPtr
	}
}

func setupExcludeFromOpt(cfg *config.Config) {
	excludePtr := flag.StringP("exclude-from", "e", cfg.ExcludeFrom,
		"exclude files matching pattern in given file (one glob per line, relative to the local path)")
	flags.getExcludeFrom = func() string {
		return *excludePtr
	}
}

func setupHostKeyOpts(cfg *config.Config) {
	knownHostsPtr := flag.String("known-hosts", cfg.KnownHostsPath, "path to the known_hosts file used to verify the server")
	insecurePtr := flag.Bool("insecure-ignore-host-key", cfg.InsecureIgnoreHostKey,
		"don't verify the server's host key (caution: vulnerable to man-in-the-middle attacks)")
	flags.getKnownHostsPath = func() string {
		return *knownHostsPtr
	}
	flags.isInsecureIgnoreHostKey = func() bool {
		return *insecurePtr
	}
}

func setupDryRunOpt(cfg *config.Config) {
	dryRunPtr := flag.Bool("dry-run", cfg.DryRun, "log what would be done without changing the destination")
	flags.isDryRun = func() bool {
		return *dryRunPtr
	}
}

func handlePanic() {
	err := recover()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Program exited unexpectedly. "+
			"Please report the below error to the author:\n"+
			"%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
	}
}

func setupUsage() {
	flag.Usage = func() {
		fmte.PrintfErr("Run \"sftpclone --help\" for usage\n")
	}
}

const helpText = `sftpclone makes a remote directory an exact mirror of a local one over SFTP.

Usage:
	 sftpclone <flags> [local-path] [[user[:password]@]hostname:remote-path]

where,
	local-path     Local directory to mirror
	remote-path    Remote directory (a plain path mirrors into a local directory)

Host settings are read from the ssh_config file. A user given in remote-path, and --port or --key
given on the command line or in the environment, take precedence over the ssh_config values.

flags: (all optional, defaults can be set with SFTPCLONE_* environment variables or a .env file)
`

func showHelpAndExit() {
	flag.CommandLine.SetOutput(os.Stdout)
	fmt.Print(helpText)
	flag.PrintDefaults()
	os.Exit(exitCodeSuccess)
}

func setupFlags(cfg *config.Config) {
	setupHelpOpt()
	setupKeyOpt(cfg)
	setupLoggingOpt(cfg)
	setupPortOpt(cfg)
	setupFixSymlinksOpt(cfg)
	setupSSHConfigOpt(cfg)
	setupExcludeFromOpt(cfg)
	setupHostKeyOpts(cfg)
	setupDryRunOpt(cfg)
	setupUsage()
}

func connectionExitCode(err error) int {
	if errors.Is(err, remote.ErrNoCredentials) || errors.Is(err, remote.ErrIncorrectPassphrase) {
		return exitCodeInvalidArgs
	}
	return exitCodeConnectionError
}

func main() {
	defer handlePanic()
	cfg, err := config.Load()
	if err != nil {
		fmte.PrintfErr("error: %v\n", err)
		os.Exit(exitCodeConfigError)
	}
	setupFlags(cfg)
	flag.Parse()
	if flags.isHelp() {
		showHelpAndExit()
	}
	if flag.NArg() != 2 {
		fmte.PrintfErr("error: two arguments expected: local path and remote path\n")
		flag.Usage()
		os.Exit(exitCodeInvalidNumArgs)
	}
	fmte.SetLevel(flags.getLogLevel())
	keyPath, keyExplicit := flags.getKeyPath()
	port, portExplicit := flags.getPort()
	cfg.KeyPath = keyPath
	cfg.Port = port
	cfg.SSHConfigPath = flags.getSSHConfigPath()
	cfg.KnownHostsPath = flags.getKnownHostsPath()
	cfg.InsecureIgnoreHostKey = flags.isInsecureIgnoreHostKey()
	cfg.ExcludeFrom = flags.getExcludeFrom()
	cfg.ExpandPaths()

	location, err := remote.ParseLocation(flag.Arg(1))
	if err != nil {
		fmte.PrintfErr("error: %v\n", err)
		flag.Usage()
		os.Exit(exitCodeInvalidArgs)
	}
	localRoot, err := resolveLocalRoot(flag.Arg(0))
	if err != nil {
		fmte.Criticalf("%v", err)
		os.Exit(exitCodeLocalDirError)
	}
	exclusions, err := loadExclusions(cfg.ExcludeFrom, localRoot)
	if err != nil {
		fmte.Criticalf("%v", err)
		os.Exit(exitCodeExclusionFilesError)
	}

	var dest *destination
	if location.IsRemote {
		dest, err = openRemoteDestination(location, cfg, portExplicit, keyExplicit)
	} else {
		dest, err = openLocalDestination(location)
	}
	if err != nil {
		fmte.Criticalf("%v", err)
		os.Exit(connectionExitCode(err))
	}

	_, syncErr := sftpClone(localRoot, exclusions, dest, flags.isFixSymlinks(), flags.isDryRun())
	closeDestination(dest)
	if syncErr != nil {
		fmte.Criticalf("error while syncing: %+v", syncErr)
		os.Exit(exitCodeSyncError)
	}
}
