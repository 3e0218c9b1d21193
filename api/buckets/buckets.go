// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package buckets

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/seesaw/api/utils"
	"github.com/vechain/seesaw/node"
	"github.com/vechain/seesaw/seesaw"
)

type Buckets struct {
	node *node.Node
}

func New(node *node.Node) *Buckets {
	return &Buckets{
		node,
	}
}

func (b *Buckets) handleGetBucket(w http.ResponseWriter, req *http.Request) error {
	addr, err := seesaw.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	summary, err := b.node.Inspect(addr)
	if err != nil {
		if errors.Is(err, node.ErrBucketNotFound) {
			return utils.NotFound(err)
		}
		return err
	}
	return utils.WriteJSON(w, ConvertSummary(summary))
}

func (b *Buckets) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("GET /buckets/{address}").
		HandlerFunc(utils.WrapHandlerFunc(b.handleGetBucket))
}
