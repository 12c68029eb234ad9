// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import "io"

// fakeExecutor implements executor for testing. It records the command it
// was asked to run and replies with canned output or an error.
type fakeExecutor struct {
	lookErr error
	output  string
	runErr  error

	gotName  string
	gotArgs  []string
	gotStdin string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	f.gotName = name
	f.gotArgs = args
	data, _ := io.ReadAll(stdin)
	f.gotStdin = string(data)
	if f.runErr != nil {
		return f.runErr
	}
	_, err := stdout.Write([]byte(f.output))
	return err
}
