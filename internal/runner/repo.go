package runner

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/cli/go-gh/v2/pkg/repository"
)

// currentRepository reads GH_REPO or the git remotes of the working directory.
var currentRepository = repository.Current

// DetectRepo returns the checkout's repository as "owner/repo". The remote must live on host,
// so a fork on another GitHub instance is never dispatched against the configured API.
func DetectRepo(host string) (string, error) {
	repo, err := currentRepository()
	if err != nil {
		return "", fmt.Errorf("failed to detect repository: %w", err)
	}

	if host != "" && auth.NormalizeHostname(repo.Host) != auth.NormalizeHostname(host) {
		return "", fmt.Errorf("detected repository %s/%s is on %s, not %s", repo.Owner, repo.Name, repo.Host, host)
	}

	return repo.Owner + "/" + repo.Name, nil
}
