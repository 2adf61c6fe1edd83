package remote

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/m-manu/sftpclone/fmte"
	"github.com/m-manu/sftpclone/lib"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
	"golang.org/x/term"
)

var (
	// ErrNoCredentials is returned when neither a password, a private key nor an agent is available
	ErrNoCredentials = errors.New("you need to specify either a password, an identity or to enable the ssh-agent")
	// ErrIncorrectPassphrase is returned when an encrypted private key cannot be decoded
	ErrIncorrectPassphrase = errors.New("incorrect passphrase, cannot decode private key")
	// ErrUnknownHost is returned when the remote host name cannot be resolved
	ErrUnknownHost = errors.New("hostname not known")
)

// PassphrasePrompt asks the user for the passphrase of an encrypted private key
type PassphrasePrompt func(keyPath string) ([]byte, error)

// ConnectOptions controls how an SSH session is authenticated and verified
type ConnectOptions struct {
	KeyPath               string
	KnownHostsPath        string
	InsecureIgnoreHostKey bool
	Timeout               time.Duration
	Prompt                PassphrasePrompt
}

// Session is an authenticated SSH connection with an SFTP subsystem on top of it
type Session struct {
	SFTP      *sftp.Client
	ssh       *ssh.Client
	agentConn net.Conn
}

// TerminalPrompt reads a passphrase from the controlling terminal without echoing it
func TerminalPrompt(keyPath string) ([]byte, error) {
	fmt.Fprintf(os.Stderr, "Enter passphrase for key %s: ", keyPath)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// LoadSigner reads a private key file, prompting for a passphrase when the key is encrypted
func LoadSigner(keyPath string, prompt PassphrasePrompt) (ssh.Signer, error) {
	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("couldn't read private key %s: %w", keyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(keyBytes)
	var missing *ssh.PassphraseMissingError
	if !errors.As(err, &missing) {
		if err != nil {
			return nil, fmt.Errorf("couldn't parse private key %s: %w", keyPath, err)
		}
		return signer, nil
	}
	if prompt == nil {
		return nil, fmt.Errorf("private key %s is encrypted: %w", keyPath, ErrIncorrectPassphrase)
	}
	passphrase, err := prompt(keyPath)
	if err != nil {
		return nil, fmt.Errorf("couldn't read passphrase: %w", err)
	}
	signer, err = ssh.ParsePrivateKeyWithPassphrase(keyBytes, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrIncorrectPassphrase, keyPath, err)
	}
	return signer, nil
}

// authMethods builds the authentication methods in order of preference.
// A password in the location disables key based authentication.
func authMethods(loc Location, opts ConnectOptions) ([]ssh.AuthMethod, net.Conn, error) {
	if loc.Password != "" {
		return []ssh.AuthMethod{ssh.Password(loc.Password)}, nil, nil
	}
	methods := make([]ssh.AuthMethod, 0, 2)
	if opts.KeyPath != "" {
		if lib.IsReadableFile(opts.KeyPath) {
			signer, err := LoadSigner(opts.KeyPath, opts.Prompt)
			if err != nil {
				return nil, nil, err
			}
			methods = append(methods, ssh.PublicKeys(signer))
		} else {
			fmte.Debugf("Private key %s not readable, skipping it", opts.KeyPath)
		}
	}
	var agentConn net.Conn
	if socket := os.Getenv("SSH_AUTH_SOCK"); socket != "" {
		conn, err := net.Dial("unix", socket)
		if err != nil {
			fmte.Warnf("Couldn't connect to ssh-agent at %s: %v", socket, err)
		} else {
			agentConn = conn
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		}
	}
	if len(methods) == 0 {
		return nil, nil, ErrNoCredentials
	}
	return methods, agentConn, nil
}

func hostKeyCallback(opts ConnectOptions) (ssh.HostKeyCallback, error) {
	if opts.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(opts.KnownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("couldn't load known hosts from %s (use --insecure-ignore-host-key to skip verification): %w",
			opts.KnownHostsPath, err)
	}
	return callback, nil
}

// Connect opens an SSH connection to the location's host and starts the SFTP subsystem on it
func Connect(loc Location, opts ConnectOptions) (*Session, error) {
	methods, agentConn, err := authMethods(loc, opts)
	if err != nil {
		return nil, err
	}
	closeAgent := func() {
		if agentConn != nil {
			_ = agentConn.Close()
		}
	}
	callback, err := hostKeyCallback(opts)
	if err != nil {
		closeAgent()
		return nil, err
	}
	userName := loc.LoginUser()
	config := &ssh.ClientConfig{
		User:            userName,
		Auth:            methods,
		HostKeyCallback: callback,
		Timeout:         opts.Timeout,
	}
	fmte.Infof("Connecting to %s as %s", loc.SSHAddr(), userName)
	sshClient, err := ssh.Dial("tcp", loc.SSHAddr(), config)
	if err != nil {
		closeAgent()
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHost, loc.Host)
		}
		return nil, fmt.Errorf("SSH connection to %s failed: %w", loc.SSHSpec(), err)
	}
	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		closeAgent()
		return nil, fmt.Errorf("SFTP subsystem on %s failed: %w", loc.SSHSpec(), err)
	}
	return &Session{SFTP: sftpClient, ssh: sshClient, agentConn: agentConn}, nil
}

// Close shuts down the SFTP subsystem, the SSH connection and the agent connection
func (s *Session) Close() error {
	errs := []error{s.SFTP.Close(), s.ssh.Close()}
	if s.agentConn != nil {
		errs = append(errs, s.agentConn.Close())
	}
	return errors.Join(errs...)
}

// LoginUser is the name the session authenticates as: the location's user, or the user running
// this process when none was given
func (l Location) LoginUser() string {
	if l.User != "" {
		return l.User
	}
	return currentUserName()
}

func currentUserName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
